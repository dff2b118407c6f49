package answers

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sasswave-labs/sasswave-create/internal/pkgmgr"
)

// Prompt asks for every answer not already set in p using numbered menus on
// w, reading replies from r. An empty reply accepts the shown default.
func Prompt(r io.Reader, w io.Writer, p Preset) (Answers, error) {
	reader := bufio.NewReader(r)
	a := Defaults(p)

	if p.Name == "" {
		for {
			name, err := ask(reader, w, "App name", DefaultName)
			if err != nil {
				return Answers{}, err
			}
			if err := ValidateName(name); err != nil {
				fmt.Fprintf(w, "  %v\n", err)
				continue
			}
			a.Name = name
			break
		}
	}

	if p.Framework == "" {
		i, err := selectFromList(reader, w, "Choose framework:", Frameworks, 0)
		if err != nil {
			return Answers{}, err
		}
		a.Framework = Frameworks[i]
	}

	if p.Language == "" {
		i, err := selectFromList(reader, w, "Language:", Languages, 1)
		if err != nil {
			return Answers{}, err
		}
		a.Language = Languages[i]
	}

	if p.PkgManager == "" {
		names := make([]string, len(pkgmgr.All))
		for i, m := range pkgmgr.All {
			names[i] = m.String()
		}
		i, err := selectFromList(reader, w, "Package manager:", names, 0)
		if err != nil {
			return Answers{}, err
		}
		a.PkgManager = pkgmgr.All[i]
	}

	if p.Git == nil {
		yes, err := confirm(reader, w, "Initialize git repository?", true)
		if err != nil {
			return Answers{}, err
		}
		a.Git = yes
	}

	if p.Want3D == nil {
		yes, err := confirm(reader, w, "Do you want 3D/three.js setup?", false)
		if err != nil {
			return Answers{}, err
		}
		a.Want3D = yes
	}

	a = a.Normalize()
	if err := a.Validate(); err != nil {
		return Answers{}, err
	}
	return a, nil
}

// ask reads a free-text answer, returning def on an empty reply.
func ask(reader *bufio.Reader, w io.Writer, prompt, def string) (string, error) {
	fmt.Fprintf(w, "\n%s (%s): ", prompt, def)
	line, err := readLine(reader)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", strings.ToLower(prompt), err)
	}
	if line == "" {
		return def, nil
	}
	return line, nil
}

// selectFromList presents a numbered list and returns the selected index. An
// empty reply selects def.
func selectFromList(reader *bufio.Reader, w io.Writer, prompt string, items []string, def int) (int, error) {
	fmt.Fprintf(w, "\n%s\n", prompt)
	for i, item := range items {
		fmt.Fprintf(w, "  %d) %s\n", i+1, item)
	}
	fmt.Fprintf(w, "Enter number [1-%d] (%d): ", len(items), def+1)

	line, err := readLine(reader)
	if err != nil {
		return 0, fmt.Errorf("reading selection: %w", err)
	}
	if line == "" {
		return def, nil
	}

	num, err := strconv.Atoi(line)
	if err != nil || num < 1 || num > len(items) {
		return 0, fmt.Errorf("invalid selection %q: choose 1-%d", line, len(items))
	}
	return num - 1, nil
}

// confirm reads a yes/no answer.
func confirm(reader *bufio.Reader, w io.Writer, prompt string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	fmt.Fprintf(w, "\n%s [%s]: ", prompt, hint)

	line, err := readLine(reader)
	if err != nil {
		return false, fmt.Errorf("reading confirmation: %w", err)
	}
	switch strings.ToLower(line) {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, fmt.Errorf("invalid answer %q: reply y or n", line)
	}
}

// readLine returns the next trimmed line. A final line without a newline is
// accepted; io.EOF is only returned when nothing was read.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
