package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/buildwire/internal/boot"
	"github.com/alexisbeaulieu97/buildwire/internal/config"
	"github.com/alexisbeaulieu97/buildwire/internal/host"
	"github.com/alexisbeaulieu97/buildwire/internal/logger"
)

type applyOptions struct {
	ManifestPath string
	Verbose      bool
	Out          io.Writer
}

var applyCmdRunner = runApply

func newApplyCmd(root *rootFlags) *cobra.Command {
	opts := applyOptions{}

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply the boot plugin to a project manifest and simulate its build lifecycle",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Verbose = root.verbose
			opts.Out = cmd.OutOrStdout()
			return applyCmdRunner(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ManifestPath, "manifest", "m", "", "Path to project manifest")
	cmd.MarkFlagRequired("manifest") //nolint:errcheck

	return cmd
}

func runApply(opts applyOptions) error {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	manifest, err := config.ParseManifest(opts.ManifestPath)
	if err != nil {
		return err
	}

	level := "info"
	if opts.Verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: term.IsTerminal(int(os.Stderr.Fd())),
	})
	if err != nil {
		return err
	}
	log = log.WithProject(manifest.Name)

	project := host.NewProject(manifest.Name, manifest.HostVersion)

	plugin := boot.NewPlugin(log)
	if err := plugin.Apply(project); err != nil {
		return err
	}
	log.Debug("boot plugin applied")

	for _, spec := range manifest.Configurations {
		cfg, ok := project.Configurations().Get(spec.Name)
		if !ok {
			created, err := project.Configurations().Create(spec.Name)
			if err != nil {
				return err
			}
			cfg = created
		}
		for _, m := range spec.Modules {
			cfg.DeclareModule(host.ModuleID(m))
		}
	}

	for _, c := range manifest.Capabilities {
		if err := project.AddCapability(host.Capability(c)); err != nil {
			return err
		}
		log.WithFields(map[string]any{"capability": c}).Debug("capability applied")
	}

	unresolvedCount := resolveConfigurations(project, manifest)
	project.FinishBuild()

	writeSummary(opts.Out, project, manifest, unresolvedCount)
	return nil
}

func resolveConfigurations(project *host.Project, manifest *config.Manifest) int {
	available := make(map[host.ModuleID]struct{}, len(manifest.AvailableModules))
	for _, m := range manifest.AvailableModules {
		available[host.ModuleID(m)] = struct{}{}
	}
	resolver := host.ResolverFunc(func(m host.ModuleID) bool {
		_, ok := available[m]
		return ok
	})

	total := 0
	for _, name := range project.Configurations().Names() {
		cfg, ok := project.Configurations().Get(name)
		if !ok {
			continue
		}
		total += len(cfg.Resolve(resolver))
	}
	return total
}

var (
	summaryTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	summaryLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	summaryWarnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

func writeSummary(out io.Writer, project *host.Project, manifest *config.Manifest, unresolved int) {
	fmt.Fprintln(out, summaryTitleStyle.Render(fmt.Sprintf("Project %s (host %s)", project.Name(), project.HostVersion())))

	capabilities := "none"
	if len(manifest.Capabilities) > 0 {
		capabilities = strings.Join(manifest.Capabilities, ", ")
	}
	fmt.Fprintf(out, "%s %s\n", summaryLabelStyle.Render("capabilities:"), capabilities)
	fmt.Fprintf(out, "%s %s\n", summaryLabelStyle.Render("configurations:"), strings.Join(project.Configurations().Names(), ", "))

	if cfg, ok := project.Configurations().Get(boot.BootArchivesConfigurationName); ok {
		for _, a := range cfg.Artifacts().List() {
			fmt.Fprintf(out, "%s %s (%s) -> %s\n", summaryLabelStyle.Render("published:"), a.Name, a.Type, a.Path)
		}
	}

	if unresolved > 0 {
		fmt.Fprintln(out, summaryWarnStyle.Render(fmt.Sprintf("%d unresolved module(s); see warnings above", unresolved)))
	}
}
