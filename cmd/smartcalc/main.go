package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

	calc "github.com/mirzak123/Smart-Calculator"
)

func main() {
	log.SetFlags(0)
	var inname string
	flag.StringVar(&inname, "in", "", "read input lines from a file instead of stdin")
	flag.Parse()

	in := os.Stdin
	if inname != "" && inname != "-" {
		f, err := os.Open(inname)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		in = f
	}
	// Prompt only when a person is typing, so piped output stays clean.
	prompt := ""
	if in == os.Stdin && term.IsTerminal(int(os.Stdin.Fd())) {
		prompt = "> "
	}

	s := calc.NewSession()
	sc := bufio.NewScanner(in)
	for {
		fmt.Print(prompt)
		if !sc.Scan() {
			break
		}
		out, done, err := s.Handle(sc.Text())
		if err != nil {
			fmt.Println(err)
			continue
		}
		if out != "" {
			fmt.Println(out)
		}
		if done {
			return
		}
	}
	if err := sc.Err(); err != nil {
		log.Fatal(err)
	}
}
