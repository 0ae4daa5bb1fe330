package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"text/template"
	"time"
)

var (
	filter = flag.String("filter", ".*", "A regex filtering which tests to run")
	cfg    = Config{
		ParseCmd: "cdecl parse -f {{.In}}",
	}
)

type Config struct {
	ParseCmd string
}

func (c Config) Parse(in string) error {
	return RunWithInTemplate(in, c.ParseCmd, 5*time.Second)
}

func RunWithInTemplate(in, templ string, timeout time.Duration) error {
	data := struct{ In string }{In: in}
	t := template.New("gencmdline")
	t, err := t.Parse(templ)
	if err != nil {
		return err
	}
	var b bytes.Buffer
	err = t.Execute(&b, data)
	if err != nil {
		return err
	}
	cmdline := b.String()
	return RunWithTimeout(cmdline, timeout)
}

// True on success, else fail.
func RunWithTimeout(command string, timeout time.Duration) error {
	args := strings.Split(command, " ")
	if len(args) == 0 {
		return fmt.Errorf("malformed command %s", command)
	}
	bin := args[0]
	args = args[1:]
	c := exec.Command(bin, args...)
	rc := make(chan error, 1)
	go func() {
		err := c.Run()
		rc <- err
	}()
	t := time.NewTicker(timeout)
	defer t.Stop()
	select {
	case <-t.C:
		c.Process.Kill()
		return fmt.Errorf("%s timed out", bin)
	case err := <-rc:
		return err
	}
}

// Every file in tdir is run through the parser, which must succeed when
// expectPass is set and fail otherwise.
func ParseTests(tdir string, expectPass bool) error {
	fmt.Println("parse tests in", tdir)
	passcount := 0
	runcount := 0
	tests, err := filepath.Glob(filepath.Join(tdir, "*.decl"))
	if err != nil {
		panic(err)
	}
	for _, tc := range tests {
		m, err := regexp.MatchString(*filter, tc)
		if err != nil {
			panic(err)
		}
		if !m {
			continue
		}
		runcount += 1
		err = cfg.Parse(tc)
		if expectPass && err != nil {
			fmt.Printf("FAIL: %s parse - %s\n", tc, err)
			continue
		}
		if !expectPass && err == nil {
			fmt.Printf("FAIL: %s parse - expected an error\n", tc)
			continue
		}
		fmt.Printf("PASS: %s\n", tc)
		passcount += 1
	}
	if passcount != runcount {
		return fmt.Errorf("passed %d/%d", passcount, runcount)
	}
	return nil
}

func main() {
	flag.Parse()
	pass := true
	for _, tdir := range []struct {
		path       string
		expectPass bool
	}{
		{"test/testcases/good", true},
		{"test/testcases/bad", false},
	} {
		err := ParseTests(tdir.path, tdir.expectPass)
		if err != nil {
			fmt.Printf("%s FAIL: %s\n", tdir.path, err)
			pass = false
		}
	}
	if !pass {
		os.Exit(1)
	}
}
