package installer

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"scipion-installer/internal/config"
	"scipion-installer/internal/logger"
)

const (
	// EnvName is the environment created for Scipion, as a conda env name or a
	// virtualenv folder under the install home.
	EnvName = ".scipion3env"
	// Conda is the conda executable probed before a conda-style install.
	Conda = "conda"
	// Git is probed before a developer-mode install.
	Git = "git"
)

// EnvStyle selects the environment manager.
type EnvStyle int

const (
	Virtualenv EnvStyle = iota
	CondaEnv
)

func (s EnvStyle) String() string {
	if s == CondaEnv {
		return "conda"
	}
	return "virtualenv"
}

// Builder assembles the shell commands of an installation. It never executes
// anything; the only thing it inspects is whether clone destinations exist.
type Builder struct {
	Home   string
	Style  EnvStyle
	HTTPS  bool
	Config config.Config

	// Shell is the conda hook flavor, e.g. "bash" or "zsh".
	Shell string
	// Python creates the virtualenv.
	Python string
	// Exists reports whether a path is already on disk.
	Exists func(path string) bool
}

// NewBuilder returns a Builder for home with host facts detected from the
// running process.
func NewBuilder(home string, style EnvStyle, https bool, cfg config.Config) *Builder {
	return &Builder{
		Home:   home,
		Style:  style,
		HTTPS:  https,
		Config: cfg,
		Shell:  detectShell(),
		Python: detectPython(),
		Exists: pathExists,
	}
}

// CondaInitCmd loads conda's shell functions for the given shell flavor.
func CondaInitCmd(shell string) string {
	return fmt.Sprintf(`eval "$(%s shell.%s hook)"`, Conda, shell)
}

// CondaActivationCmd activates the Scipion conda environment.
func CondaActivationCmd() string {
	return fmt.Sprintf("%s activate %s", Conda, EnvName)
}

// VirtualenvActivationCmd sources the activate script of the virtualenv under home.
func VirtualenvActivationCmd(home string) string {
	return ". " + quote(filepath.Join(home, EnvName, "bin", "activate"))
}

// EnvironmentCommand creates and activates the environment. It does not check
// whether the environment already exists.
func (b *Builder) EnvironmentCommand() Sequence {
	if b.Style == CondaEnv {
		return Sequence{
			CondaInitCmd(b.Shell),
			fmt.Sprintf("%s create -n %s python=3", Conda, EnvName),
			CondaActivationCmd(),
		}
	}
	return Sequence{
		"cd " + quote(b.Home),
		fmt.Sprintf("%s -m virtualenv --python=python3 %s", quote(b.Python), EnvName),
		VirtualenvActivationCmd(b.Home),
	}
}

// CloneURL returns the GitHub URL of organization/repo over https or ssh.
func CloneURL(organization, repo string, https bool) string {
	if https {
		return fmt.Sprintf("https://github.com/%s/%s.git", organization, repo)
	}
	return fmt.Sprintf("git@github.com:%s/%s.git", organization, repo)
}

// RepoInstallCommand clones repo unless its folder already exists under the
// install home, then optionally installs it in editable mode.
func (b *Builder) RepoInstallCommand(repo config.Repository) Sequence {
	var seq Sequence
	folder := repo.Folder()

	if !b.Exists(filepath.Join(b.Home, folder)) {
		url := CloneURL(repo.Organization, repo.Name, b.HTTPS)
		seq.Add(fmt.Sprintf("git clone --branch %s %s %s", quote(repo.Branch), url, quote(folder)))
	} else {
		logger.Info("[INFO] %s repository detected, skipping clone.\n", repo.Name)
	}

	if repo.Installable() {
		seq.Add("pip install -e " + quote(folder))
	}
	return seq
}

// InstallationCommand installs Scipion into the active environment. Outside
// developer mode that is the released package; in developer mode the
// repositories are cloned and installed in table order, followed by the
// software folders and, unless skipXmipp, the Xmipp bundle.
func (b *Builder) InstallationCommand(dev, skipXmipp bool) Sequence {
	if !dev {
		return Sequence{"pip install " + quote(b.Config.ReleasePackage)}
	}

	seq := Sequence{"cd " + quote(b.Home)}
	for _, repo := range b.Config.Repositories {
		seq.Extend(b.RepoInstallCommand(repo))
	}
	for _, dir := range b.Config.Directories {
		seq.Add("mkdir -p " + quote(dir))
	}

	if !skipXmipp {
		seq.Extend(b.XmippCommand())
	}
	return seq
}

// XmippCommand fetches and builds the Xmipp bundle and links its build output
// where Scipion looks for it. The link step relies on the build having
// populated x.Build.
func (b *Builder) XmippCommand() Sequence {
	x := b.Config.Xmipp
	banner := color.New(color.Bold, color.FgHiMagenta).Sprint(" > Installing Xmipp-dev ...")

	seq := Sequence{"echo " + quote(banner)}
	seq.Extend(b.RepoInstallCommand(x.Repository))
	seq.Add(
		fmt.Sprintf("(cd %s && ./xmipp get_devel_sources %s)", quote(x.Repository.Folder()), quote(x.SourcesBranch)),
		fmt.Sprintf("if [ -d %[1]s ]; then pip install -e %[1]s; fi", quote(x.Plugin)),
		"export SCIPION_HOME="+quote(b.Home),
		"python -m scipion installb "+quote(x.Package),
		fmt.Sprintf("rm -rf %[1]s && ln -s \"$PWD\"/%[2]s %[1]s", quote(x.Link), quote(x.Build)),
	)
	return seq
}
