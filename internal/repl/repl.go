// Package repl runs the interactive loop: read a family name and its
// parameters, build the distribution and print one sample.
package repl

import (
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"github.com/Phasilva-dev/IC-Pedro/pkg/dist"
	"github.com/op/go-logging"
	"github.com/pkg/errors"
)

var log = logging.MustGetLogger("repl")

var prompts = map[dist.Kind]string{
	dist.KindNormal:  "Digite a média (mean) e o desvio padrão (stdDev), separados por espaço (ex.: 0 1):",
	dist.KindPoisson: "Digite o lambda (ex.: 3):",
	dist.KindUniform: "Digite o mínimo (min) e o máximo (max), separados por espaço (ex.: 0 10):",
}

// Session is one interactive loop. Src is the only random source the loop
// uses and it is advanced by sampling alone.
type Session struct {
	In       io.Reader
	Out      io.Writer
	Src      rand.Source
	ExitWord string
}

// Run loops until the exit word or the end of input. Bad input never ends
// the loop; only a read failure is returned.
func (s *Session) Run() error {
	if s.Src == nil {
		return errors.New("repl: nil random source")
	}
	lr := newLineReader(s.In)

	for {
		fmt.Fprintf(s.Out, "\nEscolha uma distribuição (%s) ou '%s' para encerrar:\n", familyList(), s.ExitWord)
		name, err := lr.word()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "cannot read distribution type")
		}
		if strings.EqualFold(name, s.ExitWord) {
			fmt.Fprintln(s.Out, "Encerrando...")
			return nil
		}

		kind, err := dist.ParseKind(name)
		if err != nil {
			log.Debugf("rejected family %q", name)
			fmt.Fprintln(s.Out, "Tipo de distribuição inválido. Tente novamente.")
			continue
		}

		fmt.Fprintln(s.Out, prompts[kind])
		params, skipped, err := lr.floats(kind.Arity())
		for _, tok := range skipped {
			fmt.Fprintf(s.Out, "Valor ignorado (não é um número): %q\n", tok)
		}
		if err == io.ErrUnexpectedEOF {
			fmt.Fprintln(s.Out, "Erro ao ler os parâmetros: entrada encerrada.")
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "cannot read parameters")
		}

		s.sampleOnce(name, params)
	}
}

func (s *Session) sampleOnce(name string, params []float64) {
	d, err := dist.Create(name, params...)
	if err != nil {
		fmt.Fprintf(s.Out, "Erro ao criar a distribuição: %v\n", err)
		return
	}
	x, err := d.Sample(s.Src)
	if err != nil {
		fmt.Fprintf(s.Out, "Erro ao gerar amostra: %v\n", err)
		return
	}
	fmt.Fprintf(s.Out, "Distribuição: %s\n", d)
	fmt.Fprintf(s.Out, "Amostra gerada: %.2f\n", x)
}

func familyList() string {
	names := make([]string, 0, len(dist.Kinds()))
	for _, k := range dist.Kinds() {
		names = append(names, k.String())
	}
	return strings.Join(names, ", ")
}
