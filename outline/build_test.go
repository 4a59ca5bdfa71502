package outline_test

import (
	"strings"
	"testing"

	"github.com/oskarkook/ctxrank/buffer"
	"github.com/oskarkook/ctxrank/outline"
)

func TestBuildRuby(t *testing.T) {
	buf := buffer.NewFileBuffer("payments.rb", "ruby", strings.Join([]string{
		"module Payments",
		"  # internal",
		"  class Gateway",
		"    def charge(amount)",
		"      amount",
		"    end",
		"  end",
		"end",
	}, "\n"))

	got, ok := outline.Build(buf)
	if !ok {
		t.Fatalf("Build() reported absent outline for ruby buffer")
	}
	for _, want := range []string{"module Payments", "class Gateway", "def charge(amount)"} {
		if !strings.Contains(got, want) {
			t.Errorf("Build() outline missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "# internal") {
		t.Errorf("Build() kept a non-definition line:\n%s", got)
	}
}

func TestBuildGo(t *testing.T) {
	buf := buffer.NewFileBuffer("main.go", "go", strings.Join([]string{
		"package main",
		"",
		"type Greeter struct{}",
		"",
		"func (g Greeter) Greet() string { return \"hi\" }",
	}, "\n"))

	got, ok := outline.Build(buf)
	if !ok {
		t.Fatalf("Build() reported absent outline for go buffer")
	}
	if !strings.Contains(got, "type Greeter struct{}") {
		t.Errorf("Build() outline missing type declaration:\n%s", got)
	}
	if !strings.Contains(got, "func (g Greeter) Greet()") {
		t.Errorf("Build() outline missing method declaration:\n%s", got)
	}
}

func TestBuildUnsupportedFiletype(t *testing.T) {
	buf := buffer.NewFileBuffer("notes.txt", "text", "def foo; end")
	if got, ok := outline.Build(buf); ok {
		t.Errorf("Build() = %q, want absent for unsupported filetype", got)
	}
}

func TestBuildNoDefinitions(t *testing.T) {
	buf := buffer.NewFileBuffer("empty.rb", "ruby", "# only a comment\n")
	if got, ok := outline.Build(buf); ok {
		t.Errorf("Build() = %q, want absent when nothing matched", got)
	}
}
