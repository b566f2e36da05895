package text

import "testing"

func TestParseIdentifierDefaultNamespace(t *testing.T) {
	id, err := ParseIdentifier("overworld")
	if err != nil {
		t.Fatal(err)
	}
	if id.Namespace() != "minecraft" || id.Path() != "overworld" {
		t.Fatalf("got %q:%q", id.Namespace(), id.Path())
	}
	if id.String() != "minecraft:overworld" {
		t.Fatalf("got %q", id.String())
	}
}

func TestParseIdentifierExplicitNamespace(t *testing.T) {
	id, err := ParseIdentifier("minestodon:brand")
	if err != nil {
		t.Fatal(err)
	}
	if id.String() != "minestodon:brand" {
		t.Fatalf("got %q", id.String())
	}
}

func TestParseIdentifierAllowsSlashInPath(t *testing.T) {
	if _, err := ParseIdentifier("minecraft:worldgen/biome"); err != nil {
		t.Fatal(err)
	}
}

func TestParseIdentifierRejectsInvalidNamespace(t *testing.T) {
	if _, err := ParseIdentifier("Bad Namespace:path"); err == nil {
		t.Fatal("expected an error for an invalid namespace")
	}
}

func TestParseIdentifierRejectsSlashInNamespace(t *testing.T) {
	if _, err := ParseIdentifier("ns/with/slash:path"); err == nil {
		t.Fatal("expected an error for a namespace containing a slash")
	}
}
