package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/msoler/farmanote"
	"github.com/msoler/farmanote/mock"
	"github.com/msoler/farmanote/resolve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adiroRegistry() *mock.Registry {
	med := &farmanote.Medicament{
		RegistryNumber: "51347",
		Name:           "ADIRO 100 MG COMPRIMIDOS GASTRORRESISTENTES EFG",
		Ingredients:    []string{"acido acetilsalicilico"},
		Documents: []farmanote.DocumentRef{
			{Type: farmanote.DocFichaTecnica, HTMLURL: "https://cima.aemps.es/ft/51347.html"},
		},
	}
	return &mock.Registry{
		SearchFn: func(ctx context.Context, name string) ([]*farmanote.Medicament, error) {
			if strings.EqualFold(name, "adiro") {
				return []*farmanote.Medicament{med}, nil
			}
			return nil, nil
		},
		DetailFn: func(ctx context.Context, nreg string) (*farmanote.Medicament, error) {
			return med, nil
		},
	}
}

func testDeps(registry farmanote.Registry, stdin string) (*Dependencies, *bytes.Buffer) {
	var stdout bytes.Buffer
	deps := &Dependencies{
		Ctx:      context.Background(),
		Stdout:   &stdout,
		Stderr:   &bytes.Buffer{},
		Registry: registry,
		Resolver: &resolve.Resolver{Registry: registry},
		Indications: &mock.IndicationsExtractor{
			ExtractFn: func(ctx context.Context, med *farmanote.Medicament) (string, error) {
				return "Prevención secundaria de acontecimientos aterotrombóticos.", nil
			},
		},
		Host:   &stdioHost{in: strings.NewReader(stdin), out: &stdout},
		Status: &mock.StatusSink{},
	}
	return deps, &stdout
}

func TestResolveCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("replaces the selection with the canonical string", func(t *testing.T) {
		t.Parallel()

		deps, stdout := testDeps(adiroRegistry(), "")

		cmd := &ResolveCmd{Name: "Adiro", NoIndications: true}
		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, "Adiro (ácido acetilsalicílico)\n", stdout.String())
	})

	t.Run("reads the selection from the host when no argument is given", func(t *testing.T) {
		t.Parallel()

		deps, stdout := testDeps(adiroRegistry(), "Adiro  \n")

		cmd := &ResolveCmd{NoIndications: true}
		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, "Adiro (ácido acetilsalicílico)\n", stdout.String())
	})

	t.Run("indications go to the status sink, not the document", func(t *testing.T) {
		t.Parallel()

		var indications []string
		deps, stdout := testDeps(adiroRegistry(), "")
		deps.Status = &mock.StatusSink{
			SetIndicationsFn: func(msg string) { indications = append(indications, msg) },
		}

		cmd := &ResolveCmd{Name: "Adiro"}
		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, "Adiro (ácido acetilsalicílico)\n", stdout.String())
		require.Len(t, indications, 2)
		assert.Equal(t, "—", indications[0])
		assert.Contains(t, indications[1], "aterotrombóticos")
	})

	t.Run("indications failure degrades to the fixed message", func(t *testing.T) {
		t.Parallel()

		var indications []string
		deps, _ := testDeps(adiroRegistry(), "")
		deps.Indications = &mock.IndicationsExtractor{
			ExtractFn: func(ctx context.Context, med *farmanote.Medicament) (string, error) {
				return "", farmanote.Errorf(farmanote.ENOTFOUND, "no section")
			},
		}
		deps.Status = &mock.StatusSink{
			SetIndicationsFn: func(msg string) { indications = append(indications, msg) },
		}

		cmd := &ResolveCmd{Name: "Adiro"}
		require.NoError(t, cmd.Run(deps))

		require.Len(t, indications, 2)
		assert.Equal(t, indicationsUnavailable, indications[1])
	})

	t.Run("unknown name reports not found and leaves the document alone", func(t *testing.T) {
		t.Parallel()

		var statuses []string
		deps, stdout := testDeps(adiroRegistry(), "")
		deps.Resolver = &resolve.Resolver{Registry: &mock.Registry{
			SearchFn: func(ctx context.Context, name string) ([]*farmanote.Medicament, error) {
				return nil, nil
			},
		}}
		deps.Status = &mock.StatusSink{
			SetStatusFn: func(msg string) { statuses = append(statuses, msg) },
		}

		cmd := &ResolveCmd{Name: "Zzyzx"}
		err := cmd.Run(deps)
		require.Error(t, err)

		assert.Empty(t, stdout.String())
		assert.Contains(t, statuses, "No encontrado en CIMA.")
	})

	t.Run("empty selection is rejected upstream of resolution", func(t *testing.T) {
		t.Parallel()

		var statuses []string
		deps, stdout := testDeps(adiroRegistry(), "   ")
		deps.Status = &mock.StatusSink{
			SetStatusFn: func(msg string) { statuses = append(statuses, msg) },
		}

		cmd := &ResolveCmd{}
		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Equal(t, farmanote.EINVALID, farmanote.ErrorCode(err))
		assert.Empty(t, stdout.String())
		assert.Contains(t, statuses, "Selecciona un nombre comercial.")
	})
}

func TestSearchCmd_Run(t *testing.T) {
	t.Parallel()

	deps, stdout := testDeps(adiroRegistry(), "")

	cmd := &SearchCmd{Name: "Adiro"}
	require.NoError(t, cmd.Run(deps))

	assert.Contains(t, stdout.String(), "51347")
	assert.Contains(t, stdout.String(), "ADIRO 100 MG")
}

func TestIndicationsCmd_Run(t *testing.T) {
	t.Parallel()

	deps, stdout := testDeps(adiroRegistry(), "")

	cmd := &IndicationsCmd{Nregistro: "51347"}
	require.NoError(t, cmd.Run(deps))

	assert.Contains(t, stdout.String(), "aterotrombóticos")
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("no command prints help and errors", func(t *testing.T) {
		t.Parallel()

		m := NewMain()
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), nil, strings.NewReader(""), &stdout, &stderr)
		require.Error(t, err)
		assert.Contains(t, stdout.String(), "farmanote")
	})

	t.Run("unknown command errors", func(t *testing.T) {
		t.Parallel()

		m := NewMain()
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"bogus"}, strings.NewReader(""), &stdout, &stderr)
		require.Error(t, err)
	})
}
