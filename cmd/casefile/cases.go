package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/phrazzld/casefile/internal/domain"
	"github.com/phrazzld/casefile/internal/service"
	"github.com/spf13/cobra"
)

// errCaseNotFound is returned by show when the case does not exist.
var errCaseNotFound = errors.New(service.MsgCaseNotFound)

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (c *cli) listCommand() *cobra.Command {
	var published, asJSON bool

	cmd := &cobra.Command{
		Use:     "list",
		GroupID: casesGroup.ID,
		Short:   "List cases, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withCases(cmd.Context(), func(cases service.CaseService) error {
				list := cases.ListCases(cmd.Context(), service.ListCasesOptions{PublishedOnly: published})
				if asJSON {
					return writeJSON(cmd.OutOrStdout(), list)
				}
				return writeCaseTable(cmd.OutOrStdout(), list)
			})
		},
	}

	cmd.Flags().BoolVar(&published, "published", false, "only list published cases")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the cases as JSON")
	return cmd
}

func writeCaseTable(w io.Writer, cases []*domain.MysteryCase) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tCREATED\tDIFFICULTY\tPUBLISHED\tTITLE")
	for _, mc := range cases {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%t\t%s\n",
			mc.ID, mc.CreatedAt.Format(time.RFC3339), mc.Difficulty, mc.IsPublished, mc.Title)
	}
	return tw.Flush()
}

func (c *cli) showCommand() *cobra.Command {
	var reveal, asJSON bool

	cmd := &cobra.Command{
		Use:     "show <id>",
		GroupID: casesGroup.ID,
		Short:   "Show one case",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withCases(cmd.Context(), func(cases service.CaseService) error {
				mc, ok := cases.GetCaseByID(cmd.Context(), args[0])
				if !ok {
					return errCaseNotFound
				}
				if !reveal {
					mc.Solution = ""
				}
				if asJSON {
					return writeJSON(cmd.OutOrStdout(), mc)
				}
				writeCase(cmd.OutOrStdout(), mc)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&reveal, "reveal", false, "include the solution")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the case as JSON")
	return cmd
}

func writeCase(w io.Writer, mc *domain.MysteryCase) {
	_, _ = fmt.Fprintf(w, "%s (#%s)\n", mc.Title, mc.ID)
	_, _ = fmt.Fprintf(w, "Difficulty: %s  Published: %t  Created: %s\n",
		mc.Difficulty, mc.IsPublished, mc.CreatedAt.Format(time.RFC3339))
	_, _ = fmt.Fprintf(w, "Author: %s\n\n%s\n\n", mc.AuthorID, mc.Description)

	_, _ = fmt.Fprintln(w, "Evidence:")
	for _, ev := range mc.Evidence {
		_, _ = fmt.Fprintf(w, "  [%s] %s (%s): %s\n", ev.ID, ev.Title, ev.Type, ev.Content)
	}
	_, _ = fmt.Fprintf(w, "Suspects: %s\n", strings.Join(mc.Suspects, ", "))
	_, _ = fmt.Fprintf(w, "Victims: %s\n", strings.Join(mc.Victims, ", "))
	if mc.Solution != "" {
		_, _ = fmt.Fprintf(w, "Solution: %s\n", mc.Solution)
	}
}

func (c *cli) createCommand() *cobra.Command {
	var author string

	cmd := &cobra.Command{
		Use:     "create <file|->",
		GroupID: casesGroup.ID,
		Short:   "Create a case from a JSON document",
		Long:    `Reads a case in the same JSON shape the HTTP API accepts and stores it under --author.`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readCaseInput(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			return c.withCases(cmd.Context(), func(cases service.CaseService) error {
				result := cases.CreateCase(cmd.Context(), input, author)
				if !result.Success {
					return resultError(result.Message, result.Errors)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (id %s)\n", result.Message, result.CaseDetails.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&author, "author", "", "public key recorded as the case author")
	_ = cmd.MarkFlagRequired("author")
	return cmd
}

func readCaseInput(stdin io.Reader, path string) (service.CreateCaseInput, error) {
	var input service.CreateCaseInput

	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return input, fmt.Errorf("failed to open case file: %w", err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		return input, fmt.Errorf("failed to decode case: %w", err)
	}
	return input, nil
}

func (c *cli) solveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "solve <id> <guess...>",
		GroupID: casesGroup.ID,
		Short:   "Submit a solution for a case",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withCases(cmd.Context(), func(cases service.CaseService) error {
				result := cases.SolveCase(cmd.Context(), service.SolveCaseInput{
					CaseID: args[0],
					Guess:  strings.Join(args[1:], " "),
				})
				if !result.Success {
					return resultError(result.Message, result.Errors)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), result.Message)
				return nil
			})
		},
	}
}

// resultError turns a failed use case result into an error listing the
// field messages in field order.
func resultError(message string, fieldErrors service.FieldErrors) error {
	if len(fieldErrors) == 0 {
		return errors.New(message)
	}

	fields := make([]string, 0, len(fieldErrors))
	for field := range fieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var b strings.Builder
	b.WriteString(message)
	for _, field := range fields {
		for _, msg := range fieldErrors[field] {
			fmt.Fprintf(&b, "\n  %s: %s", field, msg)
		}
	}
	return errors.New(b.String())
}
