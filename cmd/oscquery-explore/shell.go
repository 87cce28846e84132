package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"github.com/chzyer/readline"
)

// shell is the interactive command loop.
type shell struct {
	client *client
	cwd    string
	rl     *readline.Instance
}

func newShell(c *client) (*shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "oscquery> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return &shell{client: c, cwd: "/", rl: rl}, nil
}

// Run reads and executes commands until quit or EOF.
func (s *shell) Run() error {
	defer s.rl.Close()

	// Verify the server is reachable before entering the loop.
	root, err := s.client.Node("/")
	if err != nil {
		return fmt.Errorf("connecting to %s: %w", s.client.base, err)
	}
	count := 0
	if root.Contents != nil {
		count = root.Contents.Len()
	}
	fmt.Fprintf(s.rl.Stdout(), "Connected to %s (%d top-level nodes). Type 'help' for commands.\n",
		s.client.base, count)

	for {
		s.rl.SetPrompt(s.cwd + "> ")
		line, err := s.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			return nil
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		parts := strings.Fields(input)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "help", "?":
			s.printHelp()
		case "ls":
			s.cmdLs()
		case "cd":
			s.cmdCd(args)
		case "get":
			s.cmdGet(args)
		case "hostinfo":
			s.cmdHostInfo()
		case "quit", "exit", "q":
			return nil
		default:
			fmt.Fprintf(s.rl.Stdout(), "Unknown command: %s (try 'help')\n", cmd)
		}
	}
}

func (s *shell) printHelp() {
	fmt.Fprint(s.rl.Stdout(), `Commands:
  ls              List children of the current group
  cd <name>       Enter a child group (also: cd .., cd /absolute/path)
  get [ATTR]      Print the current node, optionally one attribute
                  (VALUE, TYPE, RANGE, ACCESS, DESCRIPTION, UNIT, ...)
  hostinfo        Print the server's HOST_INFO
  help            Show this help
  quit            Exit
`)
}

func (s *shell) cmdLs() {
	node, err := s.client.Node(s.cwd)
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Error: %v\n", err)
		return
	}
	if node.Contents == nil || node.Contents.Len() == 0 {
		if node.IsGroup() {
			fmt.Fprintln(s.rl.Stdout(), "(empty group)")
		} else {
			fmt.Fprintln(s.rl.Stdout(), "(parameter, no children)")
		}
		return
	}

	for pair := node.Contents.Oldest(); pair != nil; pair = pair.Next() {
		name, child := pair.Key, pair.Value
		if child.IsGroup() {
			count := 0
			if child.Contents != nil {
				count = child.Contents.Len()
			}
			fmt.Fprintf(s.rl.Stdout(), "  %-24s group (%d children)\n", name+"/", count)
			continue
		}
		desc := ""
		if child.Description != "" {
			desc = "  " + child.Description
		}
		fmt.Fprintf(s.rl.Stdout(), "  %-24s %-4s %s%s\n", name, child.Type, formatValue(child.Value), desc)
	}
}

func (s *shell) cmdCd(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.rl.Stdout(), "Usage: cd <name>")
		return
	}

	target := args[0]
	var next string
	switch {
	case strings.HasPrefix(target, "/"):
		next = path.Clean(target)
	case target == "..":
		next = path.Dir(s.cwd)
	default:
		next = path.Join(s.cwd, target)
	}

	node, err := s.client.Node(next)
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Error: %v\n", err)
		return
	}
	if !node.IsGroup() {
		fmt.Fprintf(s.rl.Stdout(), "%s is a parameter, not a group\n", next)
		return
	}
	s.cwd = next
}

func (s *shell) cmdGet(args []string) {
	attr := ""
	if len(args) > 0 {
		attr = strings.ToUpper(args[0])
	}

	body, err := s.client.Get(s.cwd, attr)
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Error: %v\n", err)
		return
	}
	s.printJSON(body)
}

func (s *shell) cmdHostInfo() {
	body, err := s.client.Get("/", "HOST_INFO")
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Error: %v\n", err)
		return
	}
	s.printJSON(body)
}

func (s *shell) printJSON(body []byte) {
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, body, "", "  "); err != nil {
		fmt.Fprintln(s.rl.Stdout(), string(body))
		return
	}
	fmt.Fprintln(s.rl.Stdout(), pretty.String())
}

func formatValue(values []any) string {
	if len(values) == 0 {
		return ""
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%v", v)
	}
	return "= " + strings.Join(parts, " ")
}
