// Command genranges regenerates pkg/rangedata/data.go from a RangeMessage
// XML export published by the International ISBN Agency.
package main

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"go/format"
	"os"
	"sort"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/robinjoseph08/golib/logger"
)

type rangeMessage struct {
	SerialNumber string `xml:"MessageSerialNumber"`
	Date         string `xml:"MessageDate"`
	Groups       []struct {
		Prefix string `xml:"Prefix"`
		Agency string `xml:"Agency"`
		Rules  []struct {
			Range  string `xml:"Range"`
			Length int    `xml:"Length"`
		} `xml:"Rules>Rule"`
	} `xml:"RegistrationGroups>Group"`
}

func main() {
	log := logger.New()

	var opts struct {
		Output string `short:"o" long:"output" default:"pkg/rangedata/data.go" description:"The path to write the generated table to"`
	}

	args, err := flags.Parse(&opts)
	if err != nil {
		log.Err(err).Fatal("flags parse error")
	}

	if len(args) != 1 {
		fmt.Println("go run ./cmd/scripts/genranges <path/to/RangeMessage.xml>")
		os.Exit(1)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		log.Err(err).Fatal("read error")
	}

	msg := rangeMessage{}
	if err := xml.Unmarshal(data, &msg); err != nil {
		log.Err(err).Fatal("xml parse error")
	}

	source, groups, err := render(&msg)
	if err != nil {
		log.Err(err).Fatal("render error")
	}

	if err := os.WriteFile(opts.Output, source, 0644); err != nil {
		log.Err(err).Fatal("write error")
	}

	log.Info("range table generated", logger.Data{
		"output":              opts.Output,
		"registration_groups": groups,
		"serial_number":       msg.SerialNumber,
	})
}

// render emits the gofmt-ed source of pkg/rangedata/data.go. Rules with a
// zero length mark unassigned blocks and are skipped; for assigned rules
// the bounds are truncated to the rule length, which is the registrant
// element width.
func render(msg *rangeMessage) ([]byte, int, error) {
	buf := &bytes.Buffer{}
	buf.WriteString("// Code generated by cmd/scripts/genranges. DO NOT EDIT.\n\n")
	buf.WriteString("package rangedata\n\n")
	buf.WriteString("var groups = map[string]Group{\n")

	sorted := make([]int, 0, len(msg.Groups))
	for i := range msg.Groups {
		sorted = append(sorted, i)
	}
	sort.Slice(sorted, func(a, b int) bool {
		return msg.Groups[sorted[a]].Prefix < msg.Groups[sorted[b]].Prefix
	})

	count := 0
	for _, i := range sorted {
		group := msg.Groups[i]

		ranges := make([][2]string, 0, len(group.Rules))
		for _, rule := range group.Rules {
			if rule.Length == 0 {
				continue
			}

			low, high, found := strings.Cut(rule.Range, "-")
			if !found {
				return nil, 0, fmt.Errorf("malformed range %q in group %s", rule.Range, group.Prefix)
			}
			if rule.Length > len(low) || rule.Length > len(high) {
				return nil, 0, fmt.Errorf("range %q narrower than length %d in group %s", rule.Range, rule.Length, group.Prefix)
			}

			ranges = append(ranges, [2]string{low[:rule.Length], high[:rule.Length]})
		}
		if len(ranges) == 0 {
			continue
		}
		count++

		fmt.Fprintf(buf, "\t%q: {\n", group.Prefix)
		fmt.Fprintf(buf, "\t\tName: %q,\n", group.Agency)
		buf.WriteString("\t\tRanges: []Range{\n")
		for _, r := range ranges {
			fmt.Fprintf(buf, "\t\t\t{%q, %q},\n", r[0], r[1])
		}
		buf.WriteString("\t\t},\n")
		buf.WriteString("\t},\n")
	}
	buf.WriteString("}\n")

	source, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, 0, err
	}
	return source, count, nil
}
