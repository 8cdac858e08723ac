package config

// Repository describes one source repository cloned in developer mode.
// - Name: GitHub repository name, also the clone folder when CloneFolder is empty.
// - Organization: GitHub organization owning the repository.
// - Branch: branch passed to `git clone --branch`.
// - CloneFolder: optional destination folder under the install home.
// - PipInstall: whether to `pip install -e` the clone. Defaults to true when omitted.
type Repository struct {
	Name         string `yaml:"name"`
	Organization string `yaml:"organization"`
	Branch       string `yaml:"branch"`
	CloneFolder  string `yaml:"clone_folder"`
	PipInstall   *bool  `yaml:"pip_install"`
}

// Folder returns the directory, relative to the install home, the repository is cloned into.
func (r Repository) Folder() string {
	if r.CloneFolder != "" {
		return r.CloneFolder
	}
	return r.Name
}

// Installable reports whether the clone gets an editable pip install.
func (r Repository) Installable() bool {
	return r.PipInstall == nil || *r.PipInstall
}

// Xmipp describes the optional Xmipp bundle and its nested build.
type Xmipp struct {
	Repository Repository `yaml:"repository"`
	// SourcesBranch is handed to `./xmipp get_devel_sources`.
	SourcesBranch string `yaml:"sources_branch"`
	// Plugin is the editable-installed Scipion plugin inside the bundle.
	Plugin string `yaml:"plugin"`
	// Package is the name given to `scipion installb`.
	Package string `yaml:"package"`
	// Build is the bundle's build output; Link is where Scipion expects it.
	Build string `yaml:"build"`
	Link  string `yaml:"link"`
}

// Config is the ordered descriptor table driving a developer-mode install.
type Config struct {
	ReleasePackage string       `yaml:"release_package"`
	Repositories   []Repository `yaml:"repositories"`
	Directories    []string     `yaml:"directories"`
	Xmipp          Xmipp        `yaml:"xmipp"`
}
