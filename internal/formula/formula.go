// Package formula avalia os templates aritméticos das perguntas do tipo FORMULA.
//
// O template referencia outras perguntas por id na forma {id}. Cada
// placeholder é substituído pelo valor numérico da resposta bruta
// correspondente (0 quando ausente ou não numérica) e a expressão
// resultante é avaliada por um parser de gramática fechada: números,
// + - * / e parênteses. Qualquer outro token é rejeitado, de modo que as
// respostas enviadas pelo usuário nunca viram sintaxe executável.
package formula

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ComputationError indica falha na avaliação de uma fórmula.
// Nunca aborta o checklist: a resposta calculada fica nula.
type ComputationError struct {
	Motivo string
}

func (e *ComputationError) Error() string {
	return "erro ao calcular fórmula: " + e.Motivo
}

func newComputationError(format string, args ...interface{}) error {
	return &ComputationError{Motivo: fmt.Sprintf(format, args...)}
}

var placeholderRe = regexp.MustCompile(`\{(\d+)\}`)

// Avaliar computa o valor de um template de fórmula sobre o mapa de
// respostas brutas (pergunta id -> texto). Retorna o resultado como
// string decimal canônica ("11", não "11.000000").
func Avaliar(template string, respostas map[int]string) (string, error) {
	expressao := placeholderRe.ReplaceAllStringFunc(template, func(ph string) string {
		id, _ := strconv.Atoi(ph[1 : len(ph)-1])
		return formatarNumero(valorNumerico(respostas[id]))
	})

	tokens, err := tokenizar(expressao)
	if err != nil {
		return "", err
	}

	p := &parser{tokens: tokens}
	resultado, err := p.expressao()
	if err != nil {
		return "", err
	}
	if !p.fim() {
		return "", newComputationError("token inesperado %q", p.atual().valor)
	}

	return formatarNumero(resultado), nil
}

// valorNumerico converte a resposta bruta em número, com 0 como padrão
// para resposta ausente ou não numérica
func valorNumerico(resposta string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(resposta), 64)
	if err != nil {
		return 0
	}
	return v
}

// formatarNumero renderiza o valor como literal decimal simples
func formatarNumero(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

type tipoToken int

const (
	tokenNumero tipoToken = iota
	tokenOperador
	tokenAbreParentese
	tokenFechaParentese
)

type token struct {
	tipo  tipoToken
	valor string
}

// tokenizar quebra a expressão em números, operadores e parênteses.
// Um placeholder não resolvido ou qualquer caractere fora da gramática
// interrompe a avaliação.
func tokenizar(expressao string) ([]token, error) {
	var tokens []token
	i := 0
	for i < len(expressao) {
		c := expressao[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case c >= '0' && c <= '9' || c == '.':
			inicio := i
			pontos := 0
			for i < len(expressao) && (expressao[i] >= '0' && expressao[i] <= '9' || expressao[i] == '.') {
				if expressao[i] == '.' {
					pontos++
				}
				i++
			}
			if pontos > 1 {
				return nil, newComputationError("número malformado %q", expressao[inicio:i])
			}
			tokens = append(tokens, token{tokenNumero, expressao[inicio:i]})
		case c == '+' || c == '-' || c == '*' || c == '/':
			tokens = append(tokens, token{tokenOperador, string(c)})
			i++
		case c == '(':
			tokens = append(tokens, token{tokenAbreParentese, "("})
			i++
		case c == ')':
			tokens = append(tokens, token{tokenFechaParentese, ")"})
			i++
		default:
			return nil, newComputationError("caractere inválido %q na expressão", string(c))
		}
	}
	return tokens, nil
}

// parser implementa descida recursiva sobre a gramática:
//
//	expressao := termo (('+'|'-') termo)*
//	termo     := fator (('*'|'/') fator)*
//	fator     := NUMERO | '(' expressao ')' | ('+'|'-') fator
type parser struct {
	tokens []token
	pos    int
}

func (p *parser) fim() bool {
	return p.pos >= len(p.tokens)
}

func (p *parser) atual() token {
	if p.fim() {
		return token{}
	}
	return p.tokens[p.pos]
}

func (p *parser) consumirOperador(ops string) (string, bool) {
	t := p.atual()
	if !p.fim() && t.tipo == tokenOperador && strings.Contains(ops, t.valor) {
		p.pos++
		return t.valor, true
	}
	return "", false
}

func (p *parser) expressao() (float64, error) {
	resultado, err := p.termo()
	if err != nil {
		return 0, err
	}
	for {
		op, ok := p.consumirOperador("+-")
		if !ok {
			return resultado, nil
		}
		direita, err := p.termo()
		if err != nil {
			return 0, err
		}
		if op == "+" {
			resultado += direita
		} else {
			resultado -= direita
		}
	}
}

func (p *parser) termo() (float64, error) {
	resultado, err := p.fator()
	if err != nil {
		return 0, err
	}
	for {
		op, ok := p.consumirOperador("*/")
		if !ok {
			return resultado, nil
		}
		direita, err := p.fator()
		if err != nil {
			return 0, err
		}
		if op == "*" {
			resultado *= direita
		} else {
			if direita == 0 {
				return 0, newComputationError("divisão por zero")
			}
			resultado /= direita
		}
	}
}

func (p *parser) fator() (float64, error) {
	if p.fim() {
		return 0, newComputationError("expressão incompleta")
	}
	t := p.atual()
	switch t.tipo {
	case tokenNumero:
		p.pos++
		v, err := strconv.ParseFloat(t.valor, 64)
		if err != nil {
			return 0, newComputationError("número malformado %q", t.valor)
		}
		return v, nil
	case tokenOperador:
		if op, ok := p.consumirOperador("+-"); ok {
			v, err := p.fator()
			if err != nil {
				return 0, err
			}
			if op == "-" {
				return -v, nil
			}
			return v, nil
		}
	case tokenAbreParentese:
		p.pos++
		v, err := p.expressao()
		if err != nil {
			return 0, err
		}
		if p.fim() || p.atual().tipo != tokenFechaParentese {
			return 0, newComputationError("parêntese não fechado")
		}
		p.pos++
		return v, nil
	}
	return 0, newComputationError("token inesperado %q", t.valor)
}
