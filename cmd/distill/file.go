package main

import (
	"fmt"
	"os"

	"github.com/mferenc/distill"
)

// Run executes the file command.
func (c *FileCmd) Run(deps *Dependencies) error {
	raw, err := os.ReadFile(c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	html := string(raw)
	if deps.Preprocessor != nil {
		html = deps.Preprocessor.Process(html)
	}

	result, err := deps.Extractor.Extract(html, c.BaseURL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", distill.ErrorMessage(err))
		return err
	}

	text := result.Text
	if deps.Converter != nil {
		text, err = deps.Converter.Convert(result.ContentHTML)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", distill.ErrorMessage(err))
			return err
		}
	}

	fmt.Fprintln(deps.Stdout, text)
	return nil
}
