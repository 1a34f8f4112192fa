package mobile

import (
	"fmt"
	"strconv"

	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/constants"
	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/router"
	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/view"
)

const tabProjects = "projects"

// tabs are the bottom navigation shown on every signed-in screen.
var tabs = []struct {
	key    string
	screen Screen
}{
	{"h", ScreenHome},
	{"u", ScreenUpload},
	{"w", ScreenWallet},
	{"l", ScreenLeaderboard},
	{"p", ScreenProjects},
	{"o", ScreenProfile},
}

// navigation returns the tab bar minus the current screen, then back and sign out.
// Tabs a role cannot reach stay visible; choosing one is redirected by the gate.
func navigation(f Frame) []view.Action {
	var actions []view.Action
	for _, tab := range tabs {
		if tab.screen == f.Screen {
			continue
		}
		actions = append(actions, f.NavAction(tab.key, tab.screen, nil))
	}
	return append(actions, f.BackAction(), f.LogoutAction())
}

func credits(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + " " + constants.TokenSymbol
}

func renderOnboarding(f Frame) view.Output {
	out := view.Output{
		Subtitle: "Empowering coastal communities to restore and protect blue carbon ecosystems",
		Icon:     constants.IconLeaf,
		Sections: []view.Section{{
			Heading: "Choose how you take part",
			Lines: []string{
				"Community Member: record field activity and earn credits",
				"Community Leader: manage projects and the community wallet",
				"Community Agent: support several communities with bulk data tools",
			},
		}},
	}
	for i, role := range AllRoles {
		out.Actions = append(out.Actions, f.LoginAction(strconv.Itoa(i+1), role))
	}
	return out
}

func renderHome(f Frame) view.Output {
	return homeDashboard(f, f.Params.String(ParamTab))
}

func renderProjects(f Frame) view.Output {
	return homeDashboard(f, tabProjects)
}

// homeDashboard renders the overview; tab "projects" leads with the project list.
func homeDashboard(f Frame, tab string) view.Output {
	total := 0.0
	for _, p := range projects {
		total += p.Credits
	}

	projectTable := &view.Table{Columns: []string{"Project", "Location", "Credits", "Progress"}}
	for _, p := range projects {
		projectTable.Rows = append(projectTable.Rows, []string{
			p.Name, p.Location, credits(p.Credits), fmt.Sprintf("%d%%", p.Progress),
		})
	}
	projectSection := view.Section{Heading: "My Projects", Table: projectTable}

	activitySection := view.Section{Heading: "Recent Activity"}
	for _, a := range recentActivity {
		activitySection.Lines = append(activitySection.Lines,
			fmt.Sprintf("%s, %s (%s) [%s]", a.Action, a.Location, a.When, a.Status))
	}

	out := view.Output{
		Subtitle: f.T.Tf("status.signed_in_as", map[string]any{"Role": f.RoleName(f.Role())}),
		Icon:     constants.IconHome,
		Metrics: []view.Metric{
			{Label: "Credits earned", Value: strconv.FormatFloat(total, 'f', 1, 64), Unit: constants.TokenSymbol, Change: "+12%"},
			{Label: "Active projects", Value: strconv.Itoa(len(projects))},
			{Label: "Team rank", Value: "#" + strconv.Itoa(currentTeamRank)},
		},
		Actions: navigation(f),
	}

	if tab == tabProjects {
		out.Title = f.ScreenTitle(ScreenProjects)
		out.Icon = constants.IconFolder
		out.Sections = []view.Section{projectSection, activitySection}
	} else {
		out.Sections = []view.Section{activitySection, projectSection}
	}
	return out
}

func renderUpload(f Frame) view.Output {
	options := view.Section{Heading: "Select project"}
	for _, p := range projects {
		options.Lines = append(options.Lines, p.Name)
	}

	out := view.Output{
		Subtitle: "Photos, GPS location and monitoring notes",
		Icon:     constants.IconUpload,
		Sections: []view.Section{
			options,
			{Heading: "Data types", Lines: []string{"Plantation photos", "Survival count", "Water quality", "Soil samples"}},
		},
		Actions: []view.Action{{
			Key:   "s",
			Label: f.T.T("action.submit_upload"),
			Do:    f.GoTo(ScreenHome, nil),
		}},
	}

	if role, ok := f.CurrentRole(); ok && role == RoleCommunityAgent {
		bulk := view.Section{
			Heading: "Bulk Upload",
			Lines:   []string{"Bulk upload data for multiple communities (CSV or Excel)"},
		}
		if f.Params.Bool(ParamBulk) {
			out.Sections = append([]view.Section{bulk}, out.Sections...)
		} else {
			out.Sections = append(out.Sections, bulk)
		}
		out.Actions = append(out.Actions, view.Action{
			Key:   "c",
			Label: f.T.T("action.bulk_upload"),
			Do:    f.GoTo(ScreenHome, nil),
		})
	}

	out.Actions = append(out.Actions, navigation(f)...)
	return out
}

func renderWallet(f Frame) view.Output {
	history := &view.Table{Columns: []string{"Amount", "Description", "Project", "When", "Status"}}
	for _, t := range transactions {
		history.Rows = append(history.Rows, []string{t.Amount + " " + constants.TokenSymbol, t.Description, t.Project, t.When, t.Status})
	}

	approvals := view.Section{Heading: "Pending Multi-Sig Approvals"}
	for _, a := range pendingApprovals {
		approvals.Lines = append(approvals.Lines, fmt.Sprintf("%s: %s for %s, %s signed, %s left",
			a.Requester, credits(a.Amount), a.Purpose, a.Signatories, a.TimeLeft))
	}

	return view.Output{
		Subtitle: "Community carbon credit wallet",
		Icon:     constants.IconWallet,
		Metrics: []view.Metric{
			{Label: "Total balance", Value: strconv.FormatFloat(walletBalance.Total, 'f', 1, 64), Unit: constants.TokenSymbol},
			{Label: "Available", Value: strconv.FormatFloat(walletBalance.Available, 'f', 1, 64), Unit: constants.TokenSymbol},
			{Label: "Pending", Value: strconv.FormatFloat(walletBalance.Pending, 'f', 1, 64), Unit: constants.TokenSymbol},
		},
		Sections: []view.Section{approvals, {Heading: "Transactions", Table: history}},
		Actions:  navigation(f),
	}
}

func renderLeaderboard(f Frame) view.Output {
	ranks := &view.Table{Columns: []string{"Rank", "Team", "Points"}}
	for _, t := range leaderboard {
		name := t.Name
		if t.Rank == currentTeamRank {
			name += " (you)"
		}
		ranks.Rows = append(ranks.Rows, []string{"#" + strconv.Itoa(t.Rank), name, strconv.Itoa(t.Points)})
	}

	return view.Output{
		Subtitle: "Community rankings",
		Icon:     constants.IconTrophy,
		Metrics:  []view.Metric{{Label: "Your rank", Value: "#" + strconv.Itoa(currentTeamRank)}},
		Sections: []view.Section{{Table: ranks}},
		Actions:  navigation(f),
	}
}

func renderMemberProfile(f Frame) view.Output {
	badges := view.Section{Heading: "Achievements"}
	for _, a := range achievements {
		mark := "[ ]"
		if a.Earned {
			mark = "[x]"
		}
		badges.Lines = append(badges.Lines, fmt.Sprintf("%s %s: %s", mark, a.Name, a.Description))
	}

	return view.Output{
		Subtitle: f.RoleName(RoleCommunityMember),
		Icon:     constants.IconProfile,
		Metrics: []view.Metric{
			{Label: "Activities", Value: "23"},
			{Label: "Credits", Value: "12.5", Unit: constants.TokenSymbol},
			{Label: "Day streak", Value: "7"},
		},
		Sections: []view.Section{badges},
		Actions:  navigation(f),
	}
}

func renderLeaderProfile(f Frame) view.Output {
	roster := &view.Table{Columns: []string{"Member", "Credits", "Status"}}
	for _, m := range leaderMembers {
		status := "inactive"
		if m.Active {
			status = "active"
		}
		roster.Rows = append(roster.Rows, []string{m.Name, credits(m.Credits), status})
	}

	return view.Output{
		Subtitle: f.RoleName(RoleCommunityLeader),
		Icon:     constants.IconProfile,
		Metrics: []view.Metric{
			{Label: "Members", Value: strconv.Itoa(len(leaderMembers))},
			{Label: "Projects", Value: strconv.Itoa(len(projects))},
		},
		Sections: []view.Section{{Heading: "Team Members", Table: roster}},
		Actions:  append([]view.Action{f.NavAction("m", ScreenWallet, nil)}, navigation(f)...),
	}
}

func renderAgentProfile(f Frame) view.Output {
	managed := &view.Table{Columns: []string{"Community", "Members", "Credits", "Status"}}
	members := 0
	for _, c := range agentCommunities {
		members += c.Members
		managed.Rows = append(managed.Rows, []string{c.Name, strconv.Itoa(c.Members), credits(c.Credits), c.Status})
	}

	return view.Output{
		Subtitle: f.RoleName(RoleCommunityAgent),
		Icon:     constants.IconProfile,
		Metrics: []view.Metric{
			{Label: "Communities", Value: strconv.Itoa(len(agentCommunities))},
			{Label: "Members reached", Value: strconv.Itoa(members)},
		},
		Sections: []view.Section{
			{Heading: "Managed Communities", Table: managed},
			{Heading: "Agent Tools", Lines: []string{"Bulk Data Upload", "Community Analytics", "Field Survey Tools", "Geographic Mapping"}},
		},
		Actions: append([]view.Action{{
			Key:   "c",
			Label: f.T.T("action.bulk_upload"),
			Do:    f.GoTo(ScreenUpload, router.Params{ParamBulk: true}),
		}}, navigation(f)...),
	}
}
