package admin

import (
	"fmt"
	"strconv"

	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/constants"
	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/router"
	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/session"
	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/settlement"
	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/view"
)

var sidebar = []struct {
	key    string
	screen Screen
}{
	{"d", ScreenDashboard},
	{"p", ScreenProjectManagement},
	{"v", ScreenVerification},
	{"i", ScreenIssuance},
	{"o", ScreenOverallImpact},
}

// navigation returns the sidebar minus the current screen, then back and sign out.
func navigation(f Frame) []view.Action {
	var actions []view.Action
	for _, item := range sidebar {
		if item.screen == f.Screen {
			continue
		}
		actions = append(actions, f.NavAction(item.key, item.screen, nil))
	}
	return append(actions, f.BackAction(), f.LogoutAction())
}

func credits(v float64) string {
	return strconv.FormatFloat(v, 'f', 0, 64) + " " + constants.TokenSymbol
}

func renderLogin(f Frame) view.Output {
	out := view.Output{
		Subtitle: "National Centre for Coastal Research",
		Icon:     constants.IconLogin,
		Sections: []view.Section{{
			Heading: "Staff roles",
			Lines: []string{
				"System Administrator: full registry access",
				"Carbon Credit Auditor: field verification",
				"NGO Supervisor: project oversight",
			},
		}},
	}
	for i, role := range AllRoles {
		out.Actions = append(out.Actions, view.Action{
			Key:   strconv.Itoa(i + 1),
			Label: f.T.Tf("action.login_as", map[string]any{"Role": f.RoleName(role)}),
			Task: f.SignIn(session.Credentials{
				Identifier: demoIdentities[role],
				Role:       role.String(),
			}),
		})
	}
	return out
}

func renderDashboard(f Frame) view.Output {
	trend := &view.Table{Columns: []string{"Month", "Credits", "Projects"}}
	for _, m := range monthlyIssuance {
		trend.Rows = append(trend.Rows, []string{m.Month, strconv.Itoa(m.Credits), strconv.Itoa(m.Projects)})
	}

	share := view.Section{Heading: "Ecosystem Distribution"}
	for _, e := range ecosystemShare {
		share.Lines = append(share.Lines, fmt.Sprintf("%s: %d%%", e.Name, e.Percent))
	}

	return view.Output{
		Subtitle: f.T.Tf("status.signed_in_as", map[string]any{"Role": f.RoleName(f.Role())}),
		Icon:     constants.IconDashboard,
		Metrics: []view.Metric{
			{Label: "Total CO2 Sequestered", Value: "12,847", Unit: "tons", Change: "+8.2%"},
			{Label: "Active Projects", Value: "156", Unit: "projects", Change: "+12"},
			{Label: "Credits Issued", Value: "89,432", Unit: constants.TokenSymbol, Change: "+1,247"},
			{Label: "Communities Engaged", Value: "2,341", Unit: "members", Change: "+89"},
		},
		Sections: []view.Section{{Heading: "Monthly Issuance", Table: trend}, share},
		Actions:  navigation(f),
	}
}

func renderOverallImpact(f Frame) view.Output {
	siteTable := &view.Table{Columns: []string{"Site", "Status", "Credits"}}
	total := 0
	for _, s := range sites {
		total += s.Credits
		siteTable.Rows = append(siteTable.Rows, []string{s.Name, s.Status, strconv.Itoa(s.Credits)})
	}

	return view.Output{
		Subtitle: "National blue carbon impact",
		Icon:     constants.IconChart,
		Metrics: []view.Metric{
			{Label: "Credits across sites", Value: strconv.Itoa(total), Unit: constants.TokenSymbol},
			{Label: "Monitored sites", Value: strconv.Itoa(len(sites))},
		},
		Sections: []view.Section{{Heading: "Project Sites", Table: siteTable}},
		Actions:  navigation(f),
	}
}

// renderProjectManagement lists every project. Projects awaiting verification or
// issuance get a numbered action that opens the matching workflow for that project.
func renderProjectManagement(f Frame) view.Output {
	table := &view.Table{Columns: []string{"#", "ID", "Project", "Community", "Status", "Progress", "Credits"}}
	var track []view.Action

	for i, p := range projects {
		key := strconv.Itoa(i + 1)
		table.Rows = append(table.Rows, []string{
			key, p.ID, p.Title, p.Community, string(p.Status), fmt.Sprintf("%d%%", p.Progress), credits(p.ExpectedCredits),
		})

		target, ok := trackTarget(p)
		if !ok {
			continue
		}
		track = append(track, view.Action{
			Key:   key,
			Label: f.T.T("action.track") + ": " + p.ID,
			Do:    f.GoTo(target, router.Params{ParamProject: p.ID}),
		})
	}

	return view.Output{
		Subtitle: fmt.Sprintf("%d registered projects", len(projects)),
		Icon:     constants.IconFolder,
		Sections: []view.Section{{Table: table}},
		Actions:  append(track, navigation(f)...),
	}
}

func renderVerification(f Frame) view.Output {
	p := findProject(f.Params.String(ParamProject), StatusVerificationPending)

	checks := view.Section{Heading: "Field Verification Checklist"}
	for _, c := range checklist {
		line := c.Label
		if c.Critical {
			line += " (critical)"
		}
		checks.Lines = append(checks.Lines, line)
	}

	return view.Output{
		Subtitle: p.ID + ": " + p.Title,
		Icon:     constants.IconCheck,
		Sections: []view.Section{
			{Heading: "Submission", Lines: []string{
				"Community: " + p.Community,
				"Location: " + p.Location,
				"Area: " + p.Area,
				"Species: " + p.Species,
				"Expected credits: " + credits(p.ExpectedCredits),
			}},
			checks,
		},
		Actions: append([]view.Action{{
			Key:   "a",
			Label: f.T.T("action.approve"),
			Do:    f.GoTo(ScreenProjectManagement, nil),
		}}, navigation(f)...),
	}
}

// renderIssuance mints credits for the selected project. The signature is bound
// to the signed-in session.
func renderIssuance(f Frame) view.Output {
	p := findProject(f.Params.String(ParamProject), StatusCreditIssuancePending)

	history := &view.Table{Columns: []string{"Project", "Credits", "Tx", "Network"}}
	for _, r := range f.Receipts(settlement.KindIssue) {
		history.Rows = append(history.Rows, []string{r.Action.ProjectID, credits(r.Action.Amount), r.TxHash, r.Network})
	}

	sections := []view.Section{{Heading: "Verification Report", Lines: []string{
		"Project: " + p.ID + ", " + p.Title,
		"Community: " + p.Community,
		"Area: " + p.Area,
		"Credit amount: " + credits(p.ExpectedCredits),
		"Standards: Verra VCS, Gold Standard, NCCR Guidelines",
	}}}
	if len(history.Rows) > 0 {
		sections = append(sections, view.Section{Heading: "Recent Issuance", Table: history})
	}

	return view.Output{
		Subtitle: "Mint verified carbon credits to the registry ledger",
		Icon:     constants.IconCredit,
		Sections: sections,
		Actions: append([]view.Action{{
			Key:   "s",
			Label: f.T.T("action.issue"),
			Task: f.Submit(settlement.Action{
				Kind:      settlement.KindIssue,
				ProjectID: p.ID,
				Amount:    p.ExpectedCredits,
				Signature: f.Role().String() + ":" + f.Session.ID,
			}),
		}}, navigation(f)...),
	}
}
