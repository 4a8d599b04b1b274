package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
)

func TestGetSimpleText(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("ayaka\n"))
	var out bytes.Buffer

	got, err := GetSimpleText(reader, "Enter username", &out)
	if err != nil {
		t.Fatalf("GetSimpleText error: %v", err)
	}
	if got != "ayaka" {
		t.Fatalf("got %q", got)
	}
	if !strings.Contains(out.String(), "Enter username") {
		t.Fatalf("prompt not written: %q", out.String())
	}
}

func TestGetSimpleText_TrimsWhitespace(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("  ayaka  \n"))
	var out bytes.Buffer

	got, err := GetSimpleText(reader, "Enter username", &out)
	if err != nil {
		t.Fatalf("GetSimpleText error: %v", err)
	}
	if got != "ayaka" {
		t.Fatalf("got %q", got)
	}
}

func TestGetSimpleText_EOFWithPartialLine(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("ayaka"))
	var out bytes.Buffer

	got, err := GetSimpleText(reader, "Enter username", &out)
	if err != nil {
		t.Fatalf("GetSimpleText error: %v", err)
	}
	if got != "ayaka" {
		t.Fatalf("got %q", got)
	}
}

func TestGetPassword_Stubbed(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("secret123"), nil }
	defer func() { readPassword = orig }()

	var out bytes.Buffer
	pw, err := GetPassword(&out)
	if err != nil {
		t.Fatalf("GetPassword error: %v", err)
	}
	if string(pw) != "secret123" {
		t.Fatalf("got %q", pw)
	}
	if !strings.Contains(out.String(), "Enter password") {
		t.Fatalf("prompt not written: %q", out.String())
	}
}
