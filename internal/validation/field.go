package validation

import (
	"fmt"

	"github.com/sverzijl/planner/internal/domain/entities"
	plannererrors "github.com/sverzijl/planner/internal/domain/errors"
)

// checkFieldLevel runs every entity's own Validate() method and collects the
// failures as FieldIssues, instead of stopping at the first one. This is the
// same "collect everything, then report" shape as
// bom_validator.ValidateBOM's cycle/duplicate/orphan accumulation.
func checkFieldLevel(raw RawData) []plannererrors.FieldIssue {
	var issues []plannererrors.FieldIssue

	for _, p := range raw.Products {
		if err := p.Validate(); err != nil {
			issues = append(issues, issue("product", string(p.ID), "validate", "valid product", err.Error()))
		}
	}
	for _, n := range raw.Nodes {
		if err := n.Validate(); err != nil {
			issues = append(issues, issue("node", string(n.ID), "validate", "valid node", err.Error()))
		}
	}
	for _, r := range raw.Routes {
		if err := r.Validate(); err != nil {
			issues = append(issues, issue("route", string(r.ID), "validate", "valid route", err.Error()))
		}
	}
	for _, tr := range raw.Trucks {
		if err := tr.Validate(); err != nil {
			issues = append(issues, issue("truck", string(tr.ID), "validate", "valid truck schedule", err.Error()))
		}
	}
	for _, ld := range raw.Labor {
		if err := ld.Validate(); err != nil {
			issues = append(issues, issue("labor_day", ld.Date.Format("2006-01-02"), "validate", "valid labor day", err.Error()))
		}
	}
	for _, d := range raw.Demand {
		if err := d.Validate(); err != nil {
			issues = append(issues, issue("demand", recordKey(d.Node, d.Product, d.Date), "validate", "valid demand", err.Error()))
		}
		if d.Date.Before(raw.Window.Start) || d.Date.After(raw.Window.End) {
			issues = append(issues, issue("demand", recordKey(d.Node, d.Product, d.Date), "date",
				fmt.Sprintf("within [%s, %s]", raw.Window.Start.Format("2006-01-02"), raw.Window.End.Format("2006-01-02")),
				d.Date.Format("2006-01-02")))
		}
	}
	for _, inv := range raw.Inventory {
		if err := inv.Validate(); err != nil {
			issues = append(issues, issue("inventory", recordKey(inv.Node, inv.Product, inv.SnapshotDate), "validate", "valid inventory", err.Error()))
		}
		if !inv.SnapshotDate.Before(raw.Window.Start) {
			issues = append(issues, issue("inventory", recordKey(inv.Node, inv.Product, inv.SnapshotDate), "snapshot_date",
				fmt.Sprintf("< %s (planning start)", raw.Window.Start.Format("2006-01-02")),
				inv.SnapshotDate.Format("2006-01-02")))
		}
	}
	if raw.Window.End.Before(raw.Window.Start) {
		issues = append(issues, issue("planning_window", "window", "start<=end",
			raw.Window.Start.Format("2006-01-02")+" <= "+raw.Window.End.Format("2006-01-02"), "start after end"))
	}

	return issues
}

func recordKey(node entities.NodeID, product entities.ProductID, date interface{ Format(string) string }) string {
	return fmt.Sprintf("%s|%s|%s", node, product, date.Format("2006-01-02"))
}

func issue(domain, recordKey, field, expected, actual string) plannererrors.FieldIssue {
	return plannererrors.FieldIssue{
		Domain:    domain,
		RecordKey: recordKey,
		Field:     field,
		Expected:  expected,
		Actual:    actual,
	}
}
