package cli

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/dmitrijs2005/moodscreen/internal/client/router"
	"github.com/dmitrijs2005/moodscreen/internal/client/storage"
)

// Logout drops the credential and the saved result in one transaction and
// resets the in-memory result.
func (a *App) Logout(ctx context.Context) error {
	if err := storage.DeleteKeys(ctx, a.db, storage.KeyToken, storage.KeyAssessmentResult); err != nil {
		return err
	}
	a.results.Forget()

	a.log.Info(ctx, "signed out")
	fmt.Fprintln(a.out, "Signed out.")
	return nil
}

// History prints one page of face detections. Optional args: page, page size.
func (a *App) History(ctx context.Context, args []string) error {
	ok, err := a.requireCredential(ctx)
	if err != nil || !ok {
		return err
	}

	var nums [2]int
	for i := 0; i < len(args) && i < len(nums); i++ {
		n, err := strconv.Atoi(args[i])
		if err != nil || n < 1 {
			return fmt.Errorf("usage: history [page [size]]: bad number %q", args[i])
		}
		nums[i] = n
	}

	env, err := a.backend.GetFaceHistory(ctx, nums[0], nums[1])
	if err != nil {
		return fmt.Errorf("history: %w", err)
	}
	if err := env.Err(); err != nil {
		return err
	}

	printHistory(a.out, env.Data)
	return nil
}

// Total prints the aggregated assessment.
func (a *App) Total(ctx context.Context) error {
	ok, err := a.requireCredential(ctx)
	if err != nil || !ok {
		return err
	}

	env, err := a.backend.GetAssessmentTotal(ctx)
	if err != nil {
		return fmt.Errorf("total: %w", err)
	}
	if err := env.Err(); err != nil {
		return err
	}

	printCombined(a.out, env.Data)
	return nil
}

// Routes lists the route table and whether each entry needs a credential.
func (a *App) Routes() error {
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PATH\tNAME\tACCESS\tREDIRECT")
	for _, rec := range a.router.Records() {
		access := "signed-in"
		if router.Guard(rec.Path, false).Allowed {
			access = "public"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", rec.Path, rec.Name, access, rec.Redirect)
	}
	return tw.Flush()
}

// Stats prints the per-operation call counters.
func (a *App) Stats() error {
	return a.metrics.WriteSummary(a.out)
}
