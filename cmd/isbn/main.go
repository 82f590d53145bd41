package main

import (
	"fmt"
	"os"

	"github.com/shelfmark/shelfmark/pkg/isbn"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:        "isbn",
		Usage:       "CLI to validate, convert, and hyphenate ISBNs",
		Description: "CLI to validate, convert, and hyphenate ISBNs",
		Commands: []*cli.Command{
			{
				Name:      "validate",
				Usage:     "check whether the input is a valid ISBN-10 or ISBN-13",
				ArgsUsage: "<isbn>",
				Action: func(c *cli.Context) error {
					raw, err := singleArg(c)
					if err != nil {
						return err
					}

					if !isbn.Valid(raw) {
						return cli.Exit(fmt.Sprintf("%s is not a valid ISBN", raw), 1)
					}
					fmt.Printf("%s is a valid ISBN\n", raw)
					return nil
				},
			},
			{
				Name:      "convert",
				Usage:     "convert between ISBN-10 and ISBN-13 forms",
				ArgsUsage: "<isbn>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "to",
						Usage: "target form, 10 or 13",
						Value: "13",
					},
				},
				Action: func(c *cli.Context) error {
					raw, err := singleArg(c)
					if err != nil {
						return err
					}

					var converted string
					switch c.String("to") {
					case "10":
						converted, err = isbn.To10(raw)
					case "13":
						converted, err = isbn.To13(raw)
					default:
						return cli.Exit("--to must be 10 or 13", 1)
					}
					if err != nil {
						return cli.Exit(fmt.Sprintf("cannot convert %s: %v", raw, err), 1)
					}

					fmt.Println(converted)
					return nil
				},
			},
			{
				Name:      "hyphenate",
				Usage:     "print the canonical hyphenated form",
				ArgsUsage: "<isbn>",
				Action: func(c *cli.Context) error {
					raw, err := singleArg(c)
					if err != nil {
						return err
					}

					hyphenated, err := isbn.Hyphenate(raw)
					if err != nil {
						return cli.Exit(fmt.Sprintf("cannot hyphenate %s: %v", raw, err), 1)
					}

					fmt.Println(hyphenated)
					return nil
				},
			},
			{
				Name:      "resolve",
				Usage:     "print the resolved registration elements",
				ArgsUsage: "<isbn>",
				Action: func(c *cli.Context) error {
					raw, err := singleArg(c)
					if err != nil {
						return err
					}

					parts, err := isbn.Parse(raw)
					if err != nil {
						return cli.Exit(fmt.Sprintf("cannot resolve %s: %v", raw, err), 1)
					}
					zone, err := isbn.PublisherZone(raw)
					if err != nil {
						return cli.Exit(fmt.Sprintf("cannot resolve %s: %v", raw, err), 1)
					}

					fmt.Printf("Prefix:      %s\n", parts.Prefix)
					fmt.Printf("Registrant:  %s\n", parts.Registrant)
					fmt.Printf("Publication: %s\n", parts.Publication)
					fmt.Printf("Check digit: %s\n", parts.CheckDigit)
					fmt.Printf("Zone:        %s\n", zone)
					return nil
				},
			},
			{
				Name:      "zone",
				Usage:     "print the registration group's national or language area",
				ArgsUsage: "<isbn>",
				Action: func(c *cli.Context) error {
					raw, err := singleArg(c)
					if err != nil {
						return err
					}

					zone, err := isbn.PublisherZone(raw)
					if err != nil {
						return cli.Exit(fmt.Sprintf("cannot resolve %s: %v", raw, err), 1)
					}

					fmt.Println(zone)
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func singleArg(c *cli.Context) (string, error) {
	if c.NArg() != 1 {
		return "", cli.Exit("expected exactly one ISBN argument", 1)
	}
	return c.Args().First(), nil
}
