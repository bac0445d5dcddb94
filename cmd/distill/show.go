package main

import (
	"fmt"

	"github.com/mferenc/distill"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	doc, err := deps.Documents.FindDocumentByID(deps.Ctx, c.ID)
	if err != nil {
		if distill.ErrorCode(err) == distill.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: document %q not found. Use 'distill history' to list stored documents.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", distill.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, doc.Text)
	return nil
}
