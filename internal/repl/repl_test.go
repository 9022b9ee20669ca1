package repl

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/Phasilva-dev/IC-Pedro/pkg/dist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, input string) string {
	t.Helper()
	var out bytes.Buffer
	s := &Session{
		In:       strings.NewReader(input),
		Out:      &out,
		Src:      dist.NewSource(dist.DefaultSeed),
		ExitWord: "sair",
	}
	require.NoError(t, s.Run())
	return out.String()
}

func expectedSample(t *testing.T, seed uint64, name string, params ...float64) string {
	t.Helper()
	d, err := dist.Create(name, params...)
	require.NoError(t, err)
	x, err := d.Sample(dist.NewSource(seed))
	require.NoError(t, err)
	return fmt.Sprintf("Amostra gerada: %.2f\n", x)
}

func TestRun_Normal(t *testing.T) {
	out := run(t, "normal\n0 1\nsair\n")

	assert.Contains(t, out, "Distribuição: Normal(μ=0.00, σ=1.00)\n")
	assert.Contains(t, out, expectedSample(t, dist.DefaultSeed, "normal", 0, 1))
	assert.True(t, strings.HasSuffix(out, "Encerrando...\n"))
}

func TestRun_ParamsAcrossLines(t *testing.T) {
	out := run(t, "uniform\n0\n\n10\nsair\n")
	assert.Contains(t, out, "Distribuição: Uniform(min=0.00, max=10.00)\n")
	assert.Contains(t, out, expectedSample(t, dist.DefaultSeed, "uniform", 0, 10))
}

func TestRun_Lowercases(t *testing.T) {
	out := run(t, "  POISSON \n3\nSAIR\n")
	assert.Contains(t, out, "Distribuição: Poisson(λ=3.00)\n")
	assert.Contains(t, out, "Encerrando...")
}

func TestRun_SkipsBadTokens(t *testing.T) {
	out := run(t, "poisson\nabc 2.5\nsair\n")
	assert.Contains(t, out, `Valor ignorado (não é um número): "abc"`)
	assert.Contains(t, out, "Distribuição: Poisson(λ=2.50)\n")
}

func TestRun_UnknownFamilyContinues(t *testing.T) {
	out := run(t, "gamma\nuniform\n0 1\nsair\n")
	assert.Contains(t, out, "Tipo de distribuição inválido. Tente novamente.")
	assert.Contains(t, out, "Distribuição: Uniform(min=0.00, max=1.00)\n")
}

func TestRun_InvalidParameterContinues(t *testing.T) {
	out := run(t, "normal\n0 0\nuniform\n5 5\nnormal\n1 2\nsair\n")
	assert.Equal(t, 2, strings.Count(out, "Erro ao criar a distribuição:"))
	assert.Contains(t, out, "std_dev must be greater than 0")
	assert.Contains(t, out, "min must be less than max")
	assert.Contains(t, out, "Distribuição: Normal(μ=1.00, σ=2.00)\n")
}

func TestRun_SamplingErrorContinues(t *testing.T) {
	out := run(t, "uniform\n-1.7e308 1.7e308\nsair\n")
	assert.Contains(t, out, "Erro ao gerar amostra:")
	assert.Contains(t, out, "Encerrando...")
}

func TestRun_SourceSharedAcrossDraws(t *testing.T) {
	out := run(t, "normal\n0 1\nnormal\n0 1\nsair\n")

	src := dist.NewSource(dist.DefaultSeed)
	d, err := dist.Create("normal", 0, 1)
	require.NoError(t, err)
	first, err := d.Sample(src)
	require.NoError(t, err)
	second, err := d.Sample(src)
	require.NoError(t, err)

	i := strings.Index(out, fmt.Sprintf("Amostra gerada: %.2f\n", first))
	j := strings.LastIndex(out, fmt.Sprintf("Amostra gerada: %.2f\n", second))
	require.NotEqual(t, -1, i)
	require.NotEqual(t, -1, j)
	assert.Less(t, i, j)
}

func TestRun_EOF(t *testing.T) {
	out := run(t, "normal\n0.5\n")
	assert.Contains(t, out, "Erro ao ler os parâmetros: entrada encerrada.")

	out = run(t, "")
	assert.Contains(t, out, "Escolha uma distribuição (normal, poisson, uniform) ou 'sair' para encerrar:")
}

func TestRun_NilSource(t *testing.T) {
	s := &Session{In: strings.NewReader(""), Out: &bytes.Buffer{}}
	assert.Error(t, s.Run())
}

func TestLineReader_Floats(t *testing.T) {
	lr := newLineReader(strings.NewReader("1 x 2 3\n4\n"))
	values, skipped, err := lr.floats(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, values)
	assert.Equal(t, []string{"x"}, skipped)

	// the 3 on the first line was dropped
	values, _, err = lr.floats(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{4}, values)
}
