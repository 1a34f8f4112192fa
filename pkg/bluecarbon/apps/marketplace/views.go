package marketplace

import (
	"fmt"
	"strconv"

	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/constants"
	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/router"
	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/settlement"
	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/view"
)

var menu = []struct {
	key    string
	screen Screen
}{
	{"m", ScreenLanding},
	{"w", ScreenWallet},
	{"r", ScreenReports},
}

func navigation(f Frame) []view.Action {
	var actions []view.Action
	for _, item := range menu {
		if item.screen == f.Screen {
			continue
		}
		actions = append(actions, f.NavAction(item.key, item.screen, nil))
	}
	return append(actions, f.BackAction(), f.LogoutAction())
}

func number(v int) string {
	s := strconv.Itoa(v)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	return s
}

func renderLanding(f Frame) view.Output {
	table := &view.Table{Columns: []string{"#", "Project", "Ecosystem", "Location", "Available", "Price", "Rating"}}
	total := 0
	for i, l := range listings {
		total += l.Available
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(i + 1), l.Title, l.Ecosystem, l.Location,
			number(l.Available) + " " + constants.TokenSymbol,
			fmt.Sprintf("$%d", l.Price),
			strconv.FormatFloat(l.Rating, 'f', 1, 64),
		})
	}

	out := view.Output{
		Subtitle: "Verified blue carbon credits from coastal communities",
		Icon:     constants.IconGlobe,
		Metrics: []view.Metric{
			{Label: "Total credits available", Value: number(total), Unit: constants.TokenSymbol},
			{Label: "Verified projects", Value: strconv.Itoa(len(listings))},
		},
		Sections: []view.Section{{Heading: "Projects", Table: table}},
	}

	if !f.Session.Authenticated {
		out.Actions = []view.Action{f.LoginAction("l", RoleCorporateBuyer)}
		return out
	}

	for i, l := range listings {
		out.Actions = append(out.Actions, view.Action{
			Key:   strconv.Itoa(i + 1),
			Label: l.ID + " " + l.Title,
			Do:    f.GoTo(ScreenProject, router.Params{ParamProject: l.ID}),
		})
	}
	out.Actions = append(out.Actions, navigation(f)...)
	return out
}

func renderProject(f Frame) view.Output {
	l, ok := findListing(f.Params.String(ParamProject))
	if !ok {
		return view.Output{
			Subtitle:   "No project selected",
			Icon:       constants.IconLeaf,
			Notice:     "Choose a project from the marketplace.",
			NoticeTone: view.ToneWarning,
			Actions:    navigation(f),
		}
	}

	return view.Output{
		Title:    l.Title,
		Subtitle: l.Community + ", " + l.Location,
		Icon:     constants.IconLeaf,
		Metrics: []view.Metric{
			{Label: "Available", Value: number(l.Available), Unit: constants.TokenSymbol},
			{Label: "Price", Value: fmt.Sprintf("$%d", l.Price), Unit: "per credit"},
			{Label: "Impact", Value: l.Impact},
			{Label: "Community members", Value: strconv.Itoa(l.Members)},
		},
		Sections: []view.Section{{Heading: "About", Lines: []string{
			"Project ID: " + l.ID,
			"Ecosystem: " + l.Ecosystem,
			"Verified by NCCR registry",
			fmt.Sprintf("Lot: %d %s for $%s", defaultPurchase, constants.TokenSymbol, number(defaultPurchase*l.Price)),
		}}},
		Actions: append([]view.Action{{
			Key:   "u",
			Label: f.T.T("action.purchase"),
			Task: f.Submit(settlement.Action{
				Kind:      settlement.KindPurchase,
				ProjectID: l.ID,
				Amount:    defaultPurchase,
			}),
		}}, navigation(f)...),
	}
}

func renderWallet(f Frame) view.Output {
	retired := &view.Table{Columns: []string{"ID", "Project", "Credits", "Date", "Reason", "Certificate"}}
	for _, r := range retirements {
		retired.Rows = append(retired.Rows, []string{r.ID, r.Project, strconv.Itoa(r.Credits), r.Date, r.Reason, r.Certificate})
	}

	sections := []view.Section{{Heading: "Retired Credits", Table: retired}}

	var recent []string
	for _, r := range f.Receipts(settlement.KindPurchase, settlement.KindRetire) {
		recent = append(recent, fmt.Sprintf("%s %s %s %s (%s)",
			r.Action.Kind, strconv.FormatFloat(r.Action.Amount, 'f', 0, 64), constants.TokenSymbol, r.TxHash, r.Network))
	}
	if len(recent) > 0 {
		sections = append(sections, view.Section{Heading: "Ledger Activity", Lines: recent})
	}

	return view.Output{
		Subtitle: companyName,
		Icon:     constants.IconWallet,
		Metrics: []view.Metric{
			{Label: "Total balance", Value: number(corporateWallet.Total), Unit: constants.TokenSymbol},
			{Label: "Available", Value: number(corporateWallet.Available), Unit: constants.TokenSymbol},
			{Label: "Retired", Value: number(corporateWallet.Retired), Unit: constants.TokenSymbol},
			{Label: "Portfolio value", Value: "$" + number(corporateWallet.ValueUSD)},
		},
		Sections: sections,
		Actions: append([]view.Action{{
			Key:   "t",
			Label: f.T.T("action.retire"),
			Task: f.Submit(settlement.Action{
				Kind:   settlement.KindRetire,
				Amount: float64(defaultRetirement.Credits),
				Reason: defaultRetirement.Reason,
			}),
		}}, navigation(f)...),
	}
}

func renderReports(f Frame) view.Output {
	mix := view.Section{Heading: "Portfolio by Ecosystem"}
	for _, p := range portfolio {
		mix.Lines = append(mix.Lines, fmt.Sprintf("%s: %d%% (%s %s)", p.Name, p.Percent, number(p.Credits), constants.TokenSymbol))
	}

	timeline := &view.Table{Columns: []string{"Date", "Milestone", "Status"}}
	for _, m := range milestones {
		timeline.Rows = append(timeline.Rows, []string{m.Date, m.Milestone, m.Status})
	}

	certs := view.Section{Heading: "Certifications"}
	for _, c := range certifications {
		certs.Lines = append(certs.Lines, fmt.Sprintf("%s: %s (%s)", c.Name, c.Status, c.Date))
	}

	return view.Output{
		Subtitle: companyName + " ESG report",
		Icon:     constants.IconReport,
		Sections: []view.Section{mix, {Heading: "Sustainability Milestones", Table: timeline}, certs},
		Actions:  navigation(f),
	}
}
