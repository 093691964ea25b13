package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

// errInputClosed means stdin ended before a prompt was answered
var errInputClosed = errors.New("input closed before the prompt was answered")

type option struct {
	Value string
	Label string
}

// prompter asks questions on out and reads answers line by line from in.
// Invalid answers are reported and asked again.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

func (p *prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return "", inputError("%s", errInputClosed)
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Text asks for a required free-form answer
func (p *prompter) Text(label string, validate func(string) error) (string, error) {
	for {
		fmt.Fprintf(p.out, "%s: ", label)
		answer, err := p.readLine()
		if err != nil {
			return "", err
		}
		if answer == "" {
			fmt.Fprintf(p.out, "  %s is required\n", label)
			continue
		}
		if validate != nil {
			if err := validate(answer); err != nil {
				fmt.Fprintf(p.out, "  %v\n", err)
				continue
			}
		}
		return answer, nil
	}
}

// Confirm asks a yes/no question; an empty answer picks def
func (p *prompter) Confirm(label string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	for {
		fmt.Fprintf(p.out, "%s [%s]: ", label, hint)
		answer, err := p.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(p.out, "  Please answer yes or no")
	}
}

// Select asks for one of options by number or value; an empty answer picks def
func (p *prompter) Select(label string, options []option, def string) (string, error) {
	p.list(label, options, []string{def})
	for {
		fmt.Fprintf(p.out, "Choose [%s]: ", def)
		answer, err := p.readLine()
		if err != nil {
			return "", err
		}
		if answer == "" {
			return def, nil
		}
		if value, ok := pick(options, answer); ok {
			return value, nil
		}
		fmt.Fprintf(p.out, "  %q is not one of the options\n", answer)
	}
}

// MultiSelect asks for a comma separated subset of options; an empty answer
// picks def
func (p *prompter) MultiSelect(label string, options []option, def []string) ([]string, error) {
	p.list(label, options, def)
	for {
		fmt.Fprintf(p.out, "Choose, comma separated [%s]: ", strings.Join(def, ","))
		answer, err := p.readLine()
		if err != nil {
			return nil, err
		}
		if answer == "" {
			return append([]string(nil), def...), nil
		}

		var picked []string
		valid := true
		for _, part := range strings.Split(answer, ",") {
			value, ok := pick(options, strings.TrimSpace(part))
			if !ok {
				fmt.Fprintf(p.out, "  %q is not one of the options\n", strings.TrimSpace(part))
				valid = false
				break
			}
			if !slices.Contains(picked, value) {
				picked = append(picked, value)
			}
		}
		if valid {
			return picked, nil
		}
	}
}

func (p *prompter) list(label string, options []option, selected []string) {
	fmt.Fprintf(p.out, "%s\n", label)
	for i, o := range options {
		mark := " "
		if slices.Contains(selected, o.Value) {
			mark = "*"
		}
		fmt.Fprintf(p.out, " %s %d) %s\n", mark, i+1, o.Label)
	}
}

func pick(options []option, answer string) (string, bool) {
	if n, err := strconv.Atoi(answer); err == nil {
		if n >= 1 && n <= len(options) {
			return options[n-1].Value, true
		}
		return "", false
	}
	for _, o := range options {
		if strings.EqualFold(o.Value, answer) {
			return o.Value, true
		}
	}
	return "", false
}
