package main

import (
	"context"
	"errors"
	"fmt"

	"ttt/internal/core/version"
	"ttt/internal/services/tracking/domain"

	"github.com/spf13/cobra"
)

// opener lets tests swap the storage behind the commands
type opener func(context.Context) (domain.ServicePort, func(), error)

type cli struct {
	open  opener
	svc   domain.ServicePort
	close func()
}

func newCLI(open opener) *cli { return &cli{open: open} }

// shutdown releases the store if a command opened it
func (c *cli) shutdown() {
	if c.close != nil {
		c.close()
		c.close = nil
	}
}

func (c *cli) root() *cobra.Command {
	root := &cobra.Command{
		Use:           "ttt",
		Short:         "Track time against projects and report over phrases like \"last week\"",
		Version:       version.Info(service).Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			svc, closeFn, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			c.svc, c.close = svc, closeFn
			return nil
		},
	}
	root.AddCommand(
		c.startCmd(), c.stopCmd(), c.statusCmd(),
		c.spanCmd(), c.framesCmd(), c.reportCmd(),
		c.projectsCmd(), c.tagsCmd(),
	)
	return root
}

func archivedFlag(cmd *cobra.Command) *string {
	return cmd.Flags().String("archived", string(domain.NotArchived), "not_archived, only_archived or both")
}

func (c *cli) startCmd() *cobra.Command {
	var create bool
	cmd := &cobra.Command{
		Use:   "start <project>",
		Short: "Start tracking a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pf, err := c.svc.Start(cmd.Context(), args[0], create)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "started %s at %s\n", pf.Project.Name, clock(pf.Frame.Start))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&create, "create", "c", false, "create the project if it does not exist")
	return cmd
}

func (c *cli) stopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the running frame",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pf, err := c.svc.Stop(cmd.Context())
			if err != nil {
				return err
			}
			if pf == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "nothing to stop")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "stopped %s after %s\n", pf.Project.Name, elapsed(pf.Frame, *pf.Frame.End))
			return nil
		},
	}
}

func (c *cli) statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the running frame",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pf, err := c.svc.Current(cmd.Context())
			if errors.Is(err, domain.ErrNoActiveFrame) {
				fmt.Fprintln(cmd.OutOrStdout(), "not tracking")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "tracking %s since %s\n", pf.Project.Name, clock(pf.Frame.Start))
			return nil
		},
	}
}

func (c *cli) spanCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "span <phrase...>",
		Short:   "Resolve a phrase such as \"last week\" or \"monday to today\"",
		Example: "  ttt span last month\n  ttt span april to yesterday",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sp, err := c.svc.Resolve(cmd.Context(), args)
			if err != nil {
				return err
			}
			printSpan(cmd.OutOrStdout(), sp)
			return nil
		},
	}
}

func (c *cli) framesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "frames <phrase...>",
		Short: "List frames overlapping a phrase",
		Args:  cobra.MinimumNArgs(1),
	}
	archived := archivedFlag(cmd)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		st, err := domain.ParseArchivedState(*archived)
		if err != nil {
			return err
		}
		view, err := c.svc.Frames(cmd.Context(), args, st)
		if err != nil {
			return err
		}
		return printFrames(cmd.OutOrStdout(), view)
	}
	return cmd
}

func (c *cli) reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report <phrase...>",
		Short: "Per-project totals over a phrase",
		Args:  cobra.MinimumNArgs(1),
	}
	archived := archivedFlag(cmd)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		st, err := domain.ParseArchivedState(*archived)
		if err != nil {
			return err
		}
		rep, err := c.svc.Report(cmd.Context(), args, st)
		if err != nil {
			return err
		}
		return printReport(cmd.OutOrStdout(), rep)
	}
	return cmd
}

func (c *cli) projectsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "projects", Short: "Manage projects"}

	list := &cobra.Command{Use: "list", Short: "List projects", Args: cobra.NoArgs}
	archived := archivedFlag(list)
	list.RunE = func(cmd *cobra.Command, _ []string) error {
		st, err := domain.ParseArchivedState(*archived)
		if err != nil {
			return err
		}
		ps, err := c.svc.Projects(cmd.Context(), st)
		if err != nil {
			return err
		}
		return printNamed(cmd.OutOrStdout(), ps)
	}

	cmd.AddCommand(
		list,
		&cobra.Command{
			Use: "add <name>", Short: "Create a project", Args: cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				p, err := c.svc.CreateProject(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "created project %s\n", p.Name)
				return nil
			},
		},
		archiveCmd(c, "archive", true, domain.ServicePort.ArchiveProject),
		archiveCmd(c, "unarchive", false, domain.ServicePort.ArchiveProject),
		&cobra.Command{
			Use: "tags <project>", Short: "List the tags on a project", Args: cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ts, err := c.svc.ProjectTags(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printNamed(cmd.OutOrStdout(), ts)
			},
		},
	)
	return cmd
}

func (c *cli) tagsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "tags", Short: "Manage tags"}

	list := &cobra.Command{Use: "list", Short: "List tags", Args: cobra.NoArgs}
	archived := archivedFlag(list)
	list.RunE = func(cmd *cobra.Command, _ []string) error {
		st, err := domain.ParseArchivedState(*archived)
		if err != nil {
			return err
		}
		ts, err := c.svc.Tags(cmd.Context(), st)
		if err != nil {
			return err
		}
		return printNamed(cmd.OutOrStdout(), ts)
	}

	var projects []string
	assign := &cobra.Command{
		Use:   "assign <tag...> --project <name>",
		Short: "Tag one or more projects",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.svc.TagProjects(cmd.Context(), args, projects); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "tagged %d project(s)\n", len(projects))
			return nil
		},
	}
	assign.Flags().StringSliceVarP(&projects, "project", "p", nil, "project to tag, repeatable")
	_ = assign.MarkFlagRequired("project")

	cmd.AddCommand(
		list,
		&cobra.Command{
			Use: "add <name>", Short: "Create a tag", Args: cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				t, err := c.svc.CreateTag(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "created tag %s\n", t.Name)
				return nil
			},
		},
		archiveCmd(c, "archive", true, domain.ServicePort.ArchiveTag),
		archiveCmd(c, "unarchive", false, domain.ServicePort.ArchiveTag),
		assign,
	)
	return cmd
}

// archiveCmd takes a method expression so c.svc is only read once the command runs
func archiveCmd[T domain.Project | domain.Tag](
	c *cli, verb string, archived bool,
	fn func(domain.ServicePort, context.Context, string, bool) (T, error),
) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " <name>",
		Short: "Set the archived flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := fn(c.svc, cmd.Context(), args[0], archived)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%sd %s\n", verb, domain.Project(v).Name)
			return nil
		},
	}
}
