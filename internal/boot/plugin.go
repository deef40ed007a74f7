package boot

import (
	"fmt"

	"github.com/Masterminds/semver/v3"

	"github.com/alexisbeaulieu97/buildwire/internal/analyzer"
	"github.com/alexisbeaulieu97/buildwire/internal/artifact"
	"github.com/alexisbeaulieu97/buildwire/internal/host"
	"github.com/alexisbeaulieu97/buildwire/internal/logger"
	"github.com/alexisbeaulieu97/buildwire/internal/registry"
	buildwireerrors "github.com/alexisbeaulieu97/buildwire/pkg/errors"
)

const (
	// PluginName identifies the boot plugin in errors and diagnostics.
	PluginName = "boot"

	// ExtensionName is the name the DSL extension is registered under.
	ExtensionName = "boot"

	// BootArchivesConfigurationName is the name of the configuration that
	// carries the project's boot archives.
	BootArchivesConfigurationName = "bootArchives"

	// BootArchiveTaskName is the name of the default executable-archive task.
	BootArchiveTaskName = "bootArchive"

	// BootBundleTaskName is the name of the default web-bundle task.
	BootBundleTaskName = "bootBundle"

	// UploadBootArchivesTaskName is the name of the task that uploads the
	// bootArchives configuration.
	UploadBootArchivesTaskName = "uploadBootArchives"

	// MinimumHostVersion is the oldest host release the plugin supports.
	MinimumHostVersion = "0.4.0"
)

// Plugin is the boot plugin: applied once per project, it gates on the host
// version, creates the boot extension and the bootArchives configuration,
// wires the capability-reactive actions, and registers the
// unresolved-dependencies analyzer.
type Plugin struct {
	minimumHostVersion string
	log                *logger.Logger
}

// NewPlugin creates the plugin with the default minimum host version.
func NewPlugin(log *logger.Logger) *Plugin {
	return &Plugin{minimumHostVersion: MinimumHostVersion, log: log}
}

// NewPluginWithMinimum creates the plugin with a custom minimum host version.
func NewPluginWithMinimum(minimum string, log *logger.Logger) *Plugin {
	return &Plugin{minimumHostVersion: minimum, log: log}
}

// Apply performs plugin application against the project. Failures are fatal
// to the apply: a too-old host, a duplicate extension or configuration, and
// any immediately-triggered action effect error all abort here.
func (p *Plugin) Apply(project *host.Project) error {
	if err := p.verifyHostVersion(project); err != nil {
		return err
	}

	ext, err := p.createExtension(project)
	if err != nil {
		return err
	}

	bootArchives, err := project.Configurations().Create(BootArchivesConfigurationName)
	if err != nil {
		return buildwireerrors.NewPluginError(PluginName, err)
	}

	if err := p.registerPluginActions(project, bootArchives, ext); err != nil {
		return err
	}

	p.registerUnresolvedDependenciesAnalyzer(project)
	return nil
}

func (p *Plugin) verifyHostVersion(project *host.Project) error {
	minimum, err := semver.NewVersion(p.minimumHostVersion)
	if err != nil {
		return buildwireerrors.NewPluginError(PluginName,
			fmt.Errorf("invalid minimum host version '%s': %w", p.minimumHostVersion, err))
	}

	actual, err := semver.NewVersion(project.HostVersion())
	if err != nil {
		return buildwireerrors.NewPluginError(PluginName,
			fmt.Errorf("invalid host version '%s': %w", project.HostVersion(), err))
	}

	if actual.LessThan(minimum) {
		return buildwireerrors.NewVersionError(PluginName, p.minimumHostVersion, project.HostVersion())
	}
	return nil
}

func (p *Plugin) createExtension(project *host.Project) (*Extension, error) {
	ext := NewExtension(project)
	if err := project.CreateExtension(ExtensionName, ext); err != nil {
		return nil, buildwireerrors.NewPluginError(PluginName, err)
	}
	return ext, nil
}

func (p *Plugin) registerPluginActions(project *host.Project, bootArchives *host.Configuration, ext *Extension) error {
	slot := artifact.NewSlot(bootArchives.Artifacts())

	reg := registry.New()
	reg.Register(&binaryAction{slot: slot, ext: ext})
	reg.Register(&webAppAction{slot: slot, ext: ext})
	reg.Register(&publishAction{configuration: bootArchives.Name()})
	reg.Register(&lockfileAction{})
	reg.Register(&launcherAction{ext: ext})

	if err := reg.Wire(project); err != nil {
		return err
	}
	return nil
}

func (p *Plugin) registerUnresolvedDependenciesAnalyzer(project *host.Project) {
	ua := analyzer.New(p.log)
	project.Configurations().OnResolutionEvent(ua.Analyze)
	project.OnBuildFinished(ua.BuildFinished)
}
