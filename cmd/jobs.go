package cmd

import (
	"fmt"
	"io"
	"net/url"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/jupark12/job-dashboard/config"
	"github.com/jupark12/job-dashboard/format"
	"github.com/jupark12/job-dashboard/generator"
	"github.com/jupark12/job-dashboard/stats"
	"github.com/jupark12/job-dashboard/view"
	"github.com/jupark12/job-dashboard/worker"
)

type jobsOptions struct {
	query  string
	status string
	tab    string
	page   int
	count  int
	seed   uint64
}

// NewJobsCommand creates the jobs command, which prints one page of a
// freshly generated working set
func NewJobsCommand(configFile *string) *cobra.Command {
	opts := jobsOptions{}

	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "List generated jobs in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if !cmd.Flags().Changed("count") {
				opts.count = cfg.Loader.Count
			}
			if !cmd.Flags().Changed("seed") {
				opts.seed = cfg.Loader.Seed
			}
			return runJobs(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.query, "query", "q", "", "case-insensitive search over job id, product and user id")
	flags.StringVarP(&opts.status, "status", "s", "", "only jobs with this status")
	flags.StringVarP(&opts.tab, "tab", "t", string(view.TabAll), "tab to show: all, failed or running")
	flags.IntVarP(&opts.page, "page", "p", 1, "page number")
	flags.IntVarP(&opts.count, "count", "n", 50, "number of jobs to generate")
	flags.Uint64Var(&opts.seed, "seed", 0, "generator seed, 0 for a random one")

	return cmd
}

func runJobs(cmd *cobra.Command, opts jobsOptions) error {
	state, err := view.ParseViewState(url.Values{
		view.ParamQuery:  {opts.query},
		view.ParamStatus: {opts.status},
		view.ParamTab:    {opts.tab},
		view.ParamPage:   {strconv.Itoa(opts.page)},
	}, view.LayoutTable)
	if err != nil {
		return err
	}

	seed := seedOrNow(opts.seed)
	gen := generator.New(generator.WithSeed(seed))
	task := worker.NewLoader(worker.NewMockSource(gen, opts.count, 0, seed), 0).Load(cmd.Context())

	result := <-task.Done()
	if result.Err != nil {
		return fmt.Errorf("failed to load jobs: %w", result.Err)
	}

	out := cmd.OutOrStdout()
	page := view.Apply(result.Jobs, state)
	renderJobs(out, page)

	counts := stats.CountsByStatus(result.Jobs)
	fmt.Fprintf(out, "Page %d of %d (%d matching)\n", page.Page, max(page.TotalPages, 1), page.Matches)
	fmt.Fprintf(out, "Total: %d  Completed: %d  Failed: %d  Running: %d  Pending: %d\n",
		counts.Total, counts.Completed, counts.Failed, counts.Running, counts.Pending)
	return nil
}

func renderJobs(out io.Writer, page view.Result) {
	if len(page.Items) == 0 {
		fmt.Fprintln(out, "No jobs found.")
		return
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Job ID", "Status", "Type", "Product", "Environment", "Registered", "Duration"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)

	for _, job := range page.Items {
		table.Append([]string{
			job.JobID,
			string(job.JobStatus),
			job.JobType,
			job.Product,
			job.Environment,
			format.FormatTime(job.JobRegistrationTime),
			format.FormatMinutes(job.TotalTimeInMinutes),
		})
	}
	table.Render()
}
