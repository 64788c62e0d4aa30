package main

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/Mindburn-Labs/continuum/pkg/continuum"
)

func renderTimeline(w io.Writer, t *continuum.Timeline) {
	for _, date := range t.Instants() {
		inst, _ := t.Instant(date)
		renderInstant(w, inst)
	}
}

func renderInstant(w io.Writer, inst *continuum.Instant) {
	label := string(inst.Date)
	if label == "" {
		label = "(genesis)"
	}
	fmt.Fprintf(w, "=== %s", label)
	if inst.Description != nil {
		fmt.Fprintf(w, "  %s", string(inst.Description))
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, role := range sortedKeys(inst.Roles) {
		members := inst.Members[role]
		occupants := "-"
		if len(members) > 0 {
			occupants = strings.Join(members, ", ")
		}
		fmt.Fprintf(tw, "  %s\t%d/%d\t%s\n", role, len(members), inst.Roles[role], occupants)
	}
	tw.Flush()

	fmt.Fprintf(w, "  users: %s\n", strings.Join(sortedKeys(inst.Users), ", "))
	fmt.Fprintf(w, "  events applied: %d\n", len(inst.Events))
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
