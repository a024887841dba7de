package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/gramaconnect/gramaconnect-backend/pkg/client"
)

var commands = map[string]command{
	"login":     {"(--email E | --phone P) --password PW [--role R]", cmdLogin},
	"register":  {"--name N --email E --password PW --role citizen|volunteer [--phone P] [--village V] [--qualifications Q --id-number ID] [--skills a,b]", cmdRegister},
	"logout":    {"", cmdLogout},
	"whoami":    {"", cmdWhoami},
	"issues":    {"[--status s1,s2] [--category C] [--mine] [--assigned] [--available]", cmdIssues},
	"issue":     {"<id>", cmdIssue},
	"history":   {"<id>", cmdHistory},
	"report":    {"--title T --description D --category C [--priority P] [--lat X --lng Y | --search Q] [--address A] [--photo FILE]...", cmdReport},
	"claim":     {"<id>", cmdClaim},
	"status":    {"<id> <under-review|in-progress|resolved|closed>", cmdStatus},
	"solutions": {"<issue-id>", cmdSolutions},
	"solve":     {"<issue-id> --title T --description D [--cost C] [--difficulty easy|medium|hard] [--material M]... [--step S]...", cmdSolve},
	"vote":      {"<solution-id>", cmdVote},
	"content":   {"[--search Q] [--category C] [--language hindi|english]", cmdContent},
	"view":      {"<content-id>", cmdView},
	"dashboard": {"", cmdDashboard},
	"geocode":   {"<lat> <lng> | --search Q", cmdGeocode},
}

// listFlag collects a repeatable string flag.
type listFlag []string

func (l *listFlag) String() string     { return strings.Join(*l, ",") }
func (l *listFlag) Set(v string) error { *l = append(*l, v); return nil }

func newFlags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	return nil
}

// oneArg parses flags that may appear after a single positional argument.
func oneArg(fs *flag.FlagSet, args []string) (string, error) {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return "", errUsage
	}
	if err := parse(fs, args[1:]); err != nil {
		return "", err
	}
	if fs.NArg() != 0 {
		return "", errUsage
	}
	return args[0], nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func cmdLogin(ctx context.Context, e *env, args []string) error {
	fs := newFlags("login")
	var req client.LoginRequest
	fs.StringVar(&req.Email, "email", "", "")
	fs.StringVar(&req.Phone, "phone", "", "")
	fs.StringVar(&req.Password, "password", "", "")
	fs.StringVar(&req.Role, "role", "", "")
	if err := parse(fs, args); err != nil {
		return err
	}
	if (req.Email == "") == (req.Phone == "") || req.Password == "" {
		return errUsage
	}

	user, err := e.session.Login(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(e.out, "Logged in as %s (%s)\n", user.Username, user.Role)
	return nil
}

func cmdRegister(ctx context.Context, e *env, args []string) error {
	fs := newFlags("register")
	var req client.RegisterRequest
	var skills string
	fs.StringVar(&req.Name, "name", "", "")
	fs.StringVar(&req.Email, "email", "", "")
	fs.StringVar(&req.Phone, "phone", "", "")
	fs.StringVar(&req.Password, "password", "", "")
	fs.StringVar(&req.Role, "role", "", "")
	fs.StringVar(&req.Village, "village", "", "")
	fs.StringVar(&req.Qualifications, "qualifications", "", "")
	fs.StringVar(&req.IDNumber, "id-number", "", "")
	fs.StringVar(&skills, "skills", "", "")
	if err := parse(fs, args); err != nil {
		return err
	}
	req.ConfirmPassword = req.Password
	req.Skills = splitList(skills)

	user, err := e.session.Register(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(e.out, "Registered and logged in as %s (%s)\n", user.Username, user.Role)
	return nil
}

func cmdLogout(_ context.Context, e *env, args []string) error {
	if len(args) != 0 {
		return errUsage
	}
	if err := e.session.Logout(); err != nil {
		return err
	}
	fmt.Fprintln(e.out, "Logged out")
	return nil
}

func cmdWhoami(ctx context.Context, e *env, args []string) error {
	if len(args) != 0 {
		return errUsage
	}
	if _, ok := e.session.User(); !ok {
		return fmt.Errorf("not logged in")
	}
	me, err := e.client.Me(ctx)
	if err != nil {
		return err
	}
	return printJSON(e.out, me)
}

func cmdIssues(ctx context.Context, e *env, args []string) error {
	fs := newFlags("issues")
	var status string
	var q client.IssueQuery
	var mine, assigned bool
	fs.StringVar(&status, "status", "", "")
	fs.StringVar(&q.Category, "category", "", "")
	fs.BoolVar(&mine, "mine", false, "")
	fs.BoolVar(&assigned, "assigned", false, "")
	fs.BoolVar(&q.Available, "available", false, "")
	if err := parse(fs, args); err != nil {
		return err
	}
	q.Statuses = splitList(status)

	if mine || assigned {
		user, ok := e.session.User()
		if !ok {
			return fmt.Errorf("--mine and --assigned require a login")
		}
		if mine {
			q.ReportedBy = user.ID
		}
		if assigned {
			q.AssignedTo = user.ID
		}
	}

	issues, err := e.client.ListIssues(ctx, q)
	if err != nil {
		return err
	}
	return printIssues(e.out, issues)
}

func printIssues(w io.Writer, issues []client.Issue) error {
	if len(issues) == 0 {
		_, err := fmt.Fprintln(w, "No issues found.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTATUS\tPRIORITY\tCATEGORY\tTITLE\tREPORTED")
	for _, i := range issues {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			i.ID, i.Status, i.Priority, i.Category, i.Title, i.CreatedAt.Format("2006-01-02"))
	}
	return tw.Flush()
}

func cmdIssue(ctx context.Context, e *env, args []string) error {
	id, err := oneArg(newFlags("issue"), args)
	if err != nil {
		return err
	}
	issue, err := e.client.GetIssue(ctx, id)
	if err != nil {
		return err
	}
	return printJSON(e.out, issue)
}

func cmdHistory(ctx context.Context, e *env, args []string) error {
	id, err := oneArg(newFlags("history"), args)
	if err != nil {
		return err
	}
	records, err := e.client.IssueHistory(ctx, id)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(e.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "WHEN\tACTION\tBY\tCHANGE")
	for _, a := range records {
		change := ""
		if to, ok := a.Changes["to"]; ok {
			change = fmt.Sprintf("%v -> %v", a.Changes["from"], to)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", a.CreatedAt.Format("2006-01-02 15:04"), a.Action, a.Actor.Username, change)
	}
	return tw.Flush()
}

func cmdReport(ctx context.Context, e *env, args []string) error {
	fs := newFlags("report")
	draft := client.NewReportDraft(client.DefaultPhotoLimits)
	var lat, lng float64
	var search, address string
	var photos listFlag
	fs.StringVar(&draft.Title, "title", "", "")
	fs.StringVar(&draft.Description, "description", "", "")
	fs.StringVar(&draft.Category, "category", "", "")
	fs.StringVar(&draft.Priority, "priority", draft.Priority, "")
	fs.Float64Var(&lat, "lat", 0, "")
	fs.Float64Var(&lng, "lng", 0, "")
	fs.StringVar(&search, "search", "", "")
	fs.StringVar(&address, "address", "", "")
	fs.Var(&photos, "photo", "")
	if err := parse(fs, args); err != nil {
		return err
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["lat"] != set["lng"] {
		return errUsage
	}

	sel := client.NewSelector(e.client, nil, draft.SelectLocation)
	switch {
	case search != "":
		sel.Search(ctx, search)
	case set["lat"]:
		sel.Click(ctx, lat, lng)
	default:
		sel.Init(ctx)
	}
	for _, b := range sel.Banners() {
		fmt.Fprintf(e.out, "warning: %s\n", b)
	}
	if address != "" {
		draft.SetAddress(address)
	}

	for _, r := range draft.AddPhotoFiles(photos...) {
		fmt.Fprintf(e.out, "photo skipped: %s\n", r.Reason)
	}

	res, err := draft.Submit(ctx, e.client)
	if err != nil {
		return err
	}
	for _, r := range res.RejectedPhotos {
		fmt.Fprintf(e.out, "photo rejected by server: %s\n", r.Reason)
	}
	fmt.Fprintf(e.out, "Reported issue %s at %s\n", res.ID, res.Location.Address)
	return nil
}

func cmdClaim(ctx context.Context, e *env, args []string) error {
	id, err := oneArg(newFlags("claim"), args)
	if err != nil {
		return err
	}
	issue, err := e.client.ClaimIssue(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(e.out, "Claimed %s (%s)\n", issue.ID, issue.Status)
	return nil
}

func cmdStatus(ctx context.Context, e *env, args []string) error {
	if len(args) != 2 {
		return errUsage
	}
	issue, err := e.client.UpdateStatus(ctx, args[0], client.StatusUpdate{Status: args[1]})
	if err != nil {
		return err
	}
	fmt.Fprintf(e.out, "Issue %s is now %s\n", issue.ID, issue.Status)
	return nil
}

func cmdSolutions(ctx context.Context, e *env, args []string) error {
	id, err := oneArg(newFlags("solutions"), args)
	if err != nil {
		return err
	}
	solutions, err := e.client.ListSolutions(ctx, id)
	if err != nil {
		return err
	}
	return printJSON(e.out, solutions)
}

func cmdSolve(ctx context.Context, e *env, args []string) error {
	fs := newFlags("solve")
	var req client.SolutionRequest
	var materials, steps listFlag
	fs.StringVar(&req.Title, "title", "", "")
	fs.StringVar(&req.Description, "description", "", "")
	fs.StringVar(&req.Cost, "cost", "", "")
	fs.StringVar(&req.Difficulty, "difficulty", "", "")
	fs.Var(&materials, "material", "")
	fs.Var(&steps, "step", "")
	id, err := oneArg(fs, args)
	if err != nil {
		return err
	}
	req.Materials, req.Steps = materials, steps

	s, err := e.client.AddSolution(ctx, id, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(e.out, "Added solution %s\n", s.ID)
	return nil
}

func cmdVote(ctx context.Context, e *env, args []string) error {
	id, err := oneArg(newFlags("vote"), args)
	if err != nil {
		return err
	}
	s, err := e.client.VoteSolution(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(e.out, "%s now has %d votes\n", s.Title, s.Votes)
	return nil
}

func cmdContent(ctx context.Context, e *env, args []string) error {
	fs := newFlags("content")
	var q client.ContentQuery
	fs.StringVar(&q.Search, "search", "", "")
	fs.StringVar(&q.Category, "category", "", "")
	fs.StringVar(&q.Language, "language", "", "")
	if err := parse(fs, args); err != nil {
		return err
	}

	items, err := e.client.ListContent(ctx, q)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(e.out, "No content found.")
		return nil
	}
	tw := tabwriter.NewWriter(e.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tLANGUAGE\tCATEGORY\tTITLE\tVIEWS")
	for _, c := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n", c.ID, c.Language, c.Category, c.Title, c.Views)
	}
	return tw.Flush()
}

func cmdView(ctx context.Context, e *env, args []string) error {
	id, err := oneArg(newFlags("view"), args)
	if err != nil {
		return err
	}
	c, err := e.client.ViewContent(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(e.out, "%s [%s, %s]\n\n%s\n", c.Title, c.Category, c.Language, c.Content)
	return nil
}

func cmdDashboard(ctx context.Context, e *env, args []string) error {
	if len(args) != 0 {
		return errUsage
	}
	d, err := e.client.Dashboard(ctx)
	if err != nil {
		return err
	}

	if d.Role == "volunteer" {
		fmt.Fprintf(e.out, "Assigned: %d  In progress: %d  Resolved: %d  Available: %d\n\n",
			d.Stats.Assigned, d.Stats.InProgress, d.Stats.Resolved, d.Stats.Available)
		fmt.Fprintln(e.out, "Your issues:")
		if err := printIssues(e.out, d.Assigned); err != nil {
			return err
		}
		fmt.Fprintln(e.out, "\nAvailable to claim:")
		return printIssues(e.out, d.Available)
	}

	fmt.Fprintf(e.out, "Reported: %d  In progress: %d  Resolved: %d  Community total: %d\n\n",
		d.Stats.Reported, d.Stats.InProgress, d.Stats.Resolved, d.Stats.CommunityTotal)
	return printIssues(e.out, d.Issues)
}

func cmdGeocode(ctx context.Context, e *env, args []string) error {
	fs := newFlags("geocode")
	search := fs.String("search", "", "")
	if err := parse(fs, args); err != nil {
		return err
	}

	var loc client.Location
	var err error
	switch {
	case *search != "" && fs.NArg() == 0:
		loc, err = e.client.SearchPlace(ctx, *search)
	case *search == "" && fs.NArg() == 2:
		lat, perr := strconv.ParseFloat(fs.Arg(0), 64)
		if perr != nil {
			return fmt.Errorf("%w: %v", errUsage, perr)
		}
		lng, perr := strconv.ParseFloat(fs.Arg(1), 64)
		if perr != nil {
			return fmt.Errorf("%w: %v", errUsage, perr)
		}
		loc, err = e.client.ReverseGeocode(ctx, lat, lng)
	default:
		return errUsage
	}
	if err != nil {
		return err
	}
	return printJSON(e.out, loc)
}
