package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRoutesCommand(t *testing.T) {
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"routes"})
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"POST    /api/tasks\n",
		"GET     /api/tasks/user/:userId\n",
		"DELETE  /api/users/:id\n",
		"GET     /metrics\n",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("missing %q in\n%s", want, out.String())
		}
	}
	if strings.Contains(out.String(), "/api/tasks/\n") {
		t.Errorf("trailing slash twins listed:\n%s", out.String())
	}
}
