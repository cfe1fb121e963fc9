package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alexanderramin/lexis/internal/domain"
)

// modeValue is a --mode flag restricted to the study modes.
type modeValue domain.StudyMode

var _ pflag.Value = (*modeValue)(nil)

func (m *modeValue) String() string { return string(*m) }
func (m *modeValue) Type() string   { return "mode" }

func (m *modeValue) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	if !domain.ValidStudyModes[s] {
		return fmt.Errorf("must be one of %s", joinModes())
	}
	*m = modeValue(s)
	return nil
}

// policyValue is a --policy flag restricted to the selection policies.
type policyValue domain.SelectionPolicy

var _ pflag.Value = (*policyValue)(nil)

func (p *policyValue) String() string { return string(*p) }
func (p *policyValue) Type() string   { return "policy" }

func (p *policyValue) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	if !domain.ValidSelectionPolicies[s] {
		return fmt.Errorf("must be one of daily, new, category")
	}
	*p = policyValue(s)
	return nil
}

func joinModes() string {
	names := make([]string, len(domain.StudyModes))
	for i, m := range domain.StudyModes {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}

func completeModes(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	names := make([]string, len(domain.StudyModes))
	for i, m := range domain.StudyModes {
		names[i] = string(m)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

func completePolicies(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return []string{"daily", "new", "category"}, cobra.ShellCompDirectiveNoFileComp
}

// categoryTag maps user input like "days of week" to the stored tag
// "DAYS_OF_WEEK".
func categoryTag(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Join(strings.Fields(s), "_")
	return strings.ToUpper(s)
}
