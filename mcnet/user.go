package mcnet

import (
	"go.uber.org/zap"
)

// User is the driver loop above a Connection: it owns the promotion from a
// bare Connection to a joined Player and turns unrecoverable tick errors
// into a best-effort kick.
type User struct {
	conn   *Connection
	player *Player
	srv    *Server
}

// NewUser wires a fresh Connection to the server it belongs to.
func NewUser(conn *Connection, srv *Server) *User {
	return &User{conn: conn, srv: srv}
}

// Run loops calling Tick until it returns Close or an error, then best-
// effort kicks the connection on error and always closes it on the way out.
func (u *User) Run() {
	defer func() {
		if u.player != nil {
			select {
			case <-u.player.done:
			default:
				close(u.player.done)
			}
		}
		_ = u.conn.Close()
	}()

	for {
		action, err := u.conn.Tick(u.srv)
		if err != nil {
			zap.L().Debug("user tick failed, kicking", zap.Error(err))
			_ = u.conn.SendErrorKick(err)
			return
		}
		if action.IsClose() {
			return
		}
		if action.IsCreatePlayer() {
			u.player = newPlayer(u.conn, action.Username())
			if err := u.player.finishJoining(u.srv); err != nil {
				zap.L().Debug("failed to finish joining, kicking", zap.Error(err))
				_ = u.conn.SendErrorKick(err)
				return
			}
		}
	}
}
