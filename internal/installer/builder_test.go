package installer

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"scipion-installer/internal/config"
)

func testBuilder(t *testing.T, home string, style EnvStyle, https bool, existing ...string) *Builder {
	t.Helper()
	cfg, err := config.Default()
	require.NoError(t, err)
	return &Builder{
		Home:   home,
		Style:  style,
		HTTPS:  https,
		Config: cfg,
		Shell:  "bash",
		Python: "/usr/bin/python3",
		Exists: func(path string) bool {
			for _, e := range existing {
				if path == e {
					return true
				}
			}
			return false
		},
	}
}

func TestEnvironmentCommandConda(t *testing.T) {
	b := testBuilder(t, "/tmp/x", CondaEnv, false)
	seq := b.EnvironmentCommand()

	want := Sequence{
		`eval "$(conda shell.bash hook)"`,
		"conda create -n .scipion3env python=3",
		"conda activate .scipion3env",
	}
	if diff := cmp.Diff(want, seq); diff != "" {
		t.Errorf("EnvironmentCommand() mismatch (-want +got):\n%s", diff)
	}

	joined := TrimSeparator(seq.String())
	assert.True(t, strings.HasPrefix(joined, CondaInitCmd("bash")))
	assert.True(t, strings.HasSuffix(joined, CondaActivationCmd()))
	assert.Equal(t, 2, strings.Count(joined, Separator))
}

func TestEnvironmentCommandVirtualenv(t *testing.T) {
	b := testBuilder(t, "/tmp/x", Virtualenv, false)

	want := Sequence{
		"cd /tmp/x",
		"/usr/bin/python3 -m virtualenv --python=python3 .scipion3env",
		". /tmp/x/.scipion3env/bin/activate",
	}
	if diff := cmp.Diff(want, b.EnvironmentCommand()); diff != "" {
		t.Errorf("EnvironmentCommand() mismatch (-want +got):\n%s", diff)
	}
}

func TestCloneURL(t *testing.T) {
	assert.Equal(t, "git@github.com:scipion-em/scipion-em.git", CloneURL("scipion-em", "scipion-em", false))
	assert.Equal(t, "https://github.com/i2pc/xmipp.git", CloneURL("i2pc", "xmipp", true))
}

func TestRepoInstallCommand(t *testing.T) {
	repo := config.Repository{Name: "scipion-em", Organization: "scipion-em", Branch: "devel"}

	b := testBuilder(t, "/tmp/x", Virtualenv, false)
	want := Sequence{
		"git clone --branch devel git@github.com:scipion-em/scipion-em.git scipion-em",
		"pip install -e scipion-em",
	}
	if diff := cmp.Diff(want, b.RepoInstallCommand(repo)); diff != "" {
		t.Errorf("fresh clone mismatch (-want +got):\n%s", diff)
	}

	// An existing clone is never cloned again.
	b = testBuilder(t, "/tmp/x", Virtualenv, false, "/tmp/x/scipion-em")
	want = Sequence{"pip install -e scipion-em"}
	if diff := cmp.Diff(want, b.RepoInstallCommand(repo)); diff != "" {
		t.Errorf("existing clone mismatch (-want +got):\n%s", diff)
	}
}

func TestRepoInstallCommandExistingClonesSkipEveryDescriptor(t *testing.T) {
	b := testBuilder(t, "/tmp/x", Virtualenv, true)
	repos := append([]config.Repository{}, b.Config.Repositories...)
	repos = append(repos, b.Config.Xmipp.Repository)
	for _, repo := range repos {
		b.Exists = func(path string) bool { return path == "/tmp/x/"+repo.Folder() }
		for _, fragment := range b.RepoInstallCommand(repo) {
			assert.NotContains(t, fragment, "git clone", repo.Name)
		}
	}
}

func TestRepoInstallCommandCloneFolderWithoutPip(t *testing.T) {
	b := testBuilder(t, "/tmp/x", Virtualenv, true)
	want := Sequence{"git clone --branch python3_migration https://github.com/i2pc/xmipp.git xmipp-bundle"}
	if diff := cmp.Diff(want, b.RepoInstallCommand(b.Config.Xmipp.Repository)); diff != "" {
		t.Errorf("RepoInstallCommand() mismatch (-want +got):\n%s", diff)
	}

	b.Exists = func(path string) bool { return path == "/tmp/x/xmipp-bundle" }
	assert.Empty(t, b.RepoInstallCommand(b.Config.Xmipp.Repository))
}

func TestInstallationCommandRelease(t *testing.T) {
	b := testBuilder(t, "/tmp/x", Virtualenv, false)
	assert.Equal(t, Sequence{"pip install scipion-app"}, b.InstallationCommand(false, false))
}

func TestInstallationCommandDevWithoutXmipp(t *testing.T) {
	b := testBuilder(t, "/tmp/x", Virtualenv, true)
	seq := b.InstallationCommand(true, true)

	want := Sequence{
		"cd /tmp/x",
		"git clone --branch devel https://github.com/scipion-em/scipion-pyworkflow.git scipion-pyworkflow",
		"pip install -e scipion-pyworkflow",
		"git clone --branch devel https://github.com/scipion-em/scipion-em.git scipion-em",
		"pip install -e scipion-em",
		"git clone --branch devel https://github.com/scipion-em/scipion-app.git scipion-app",
		"pip install -e scipion-app",
		"mkdir -p software/lib",
		"mkdir -p software/bindings",
		"mkdir -p software/em",
	}
	if diff := cmp.Diff(want, seq); diff != "" {
		t.Errorf("InstallationCommand() mismatch (-want +got):\n%s", diff)
	}
	assert.NotContains(t, seq.String(), "xmipp")
}

func TestInstallationCommandDevWithXmipp(t *testing.T) {
	b := testBuilder(t, "/tmp/x", Virtualenv, false)
	seq := b.InstallationCommand(true, false)

	require.Greater(t, len(seq), 10)
	tail := seq[10:]
	assert.Contains(t, tail[0], "Installing Xmipp-dev")
	want := Sequence{
		"git clone --branch python3_migration git@github.com:i2pc/xmipp.git xmipp-bundle",
		"(cd xmipp-bundle && ./xmipp get_devel_sources python3_migration)",
		"if [ -d xmipp-bundle/src/scipion-em-xmipp ]; then pip install -e xmipp-bundle/src/scipion-em-xmipp; fi",
		"export SCIPION_HOME=/tmp/x",
		"python -m scipion installb xmippDev",
		`rm -rf software/em/xmipp && ln -s "$PWD"/xmipp-bundle/build software/em/xmipp`,
	}
	if diff := cmp.Diff(want, tail[1:]); diff != "" {
		t.Errorf("Xmipp sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestQuote(t *testing.T) {
	assert.Equal(t, "/tmp/x", quote("/tmp/x"))
	assert.Equal(t, "'/tmp/my home'", quote("/tmp/my home"))
	assert.Equal(t, `'it'\''s'`, quote("it's"))
}
