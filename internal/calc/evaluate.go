package calc

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Knetic/govaluate"
)

// ErrorSentinel is shown on the display when an expression cannot be evaluated.
const ErrorSentinel = "ERROR"

var (
	ErrEmpty       = errors.New("empty expression")
	ErrSyntax      = errors.New("syntax error")
	ErrUnsupported = errors.New("unsupported token")
	ErrNonFinite   = errors.New("result is not a finite number")
)

// exponentLiteral matches float literals in exponent form, which the display
// itself produces for very large or very small results.
var exponentLiteral = regexp.MustCompile(`(?:\d+\.?\d*|\.\d+)[eE][+-]?\d+`)

// numericLiteral matches what the lexer reads as one NUMERIC token. Literals
// are lexed as "0" and parsed from their own text, since the lexer only
// keeps a float64 and rejects values beyond its range.
var numericLiteral = regexp.MustCompile(`[0-9.]+`)

// The lexer reads runs of symbols as one operator, so "2*-3" needs spacing
// to lex as multiply followed by negation.
var operatorSpacer = strings.NewReplacer(
	"+", " + ",
	"-", " - ",
	"*", " * ",
	"/", " / ",
	"%", " % ",
)

// Evaluate computes an arithmetic expression and returns its textual result,
// or ErrorSentinel on any failure.
func Evaluate(expression string) string {
	out, err := EvaluateErr(expression)
	if err != nil {
		return ErrorSentinel
	}
	return out
}

// EvaluateErr is Evaluate with the failure reason exposed.
//
// Only decimal literals, the binary operators + - * / %, unary signs and
// parentheses are accepted. Integer literals stay exact integers until a
// float literal or a division is involved.
func EvaluateErr(expression string) (result string, err error) {
	defer func() {
		if r := recover(); r != nil {
			result, err = "", fmt.Errorf("%w: %v", ErrSyntax, r)
		}
	}()

	if strings.TrimSpace(expression) == "" {
		return "", ErrEmpty
	}

	if exponentLiteral.MatchString(expression) {
		expression, err = expandExponents(expression)
		if err != nil {
			return "", err
		}
	}

	for _, r := range expression {
		if !isExpressionRune(r) {
			return "", fmt.Errorf("%w: %q", ErrUnsupported, r)
		}
	}
	expression = collapseSigns(expression)

	shape := numericLiteral.ReplaceAllString(expression, "0")
	expr, err := govaluate.NewEvaluableExpression(operatorSpacer.Replace(shape))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	tokens := expr.Tokens()
	if err := checkTokens(tokens); err != nil {
		return "", err
	}

	red := &reducer{
		tokens:   tokens,
		literals: numericLiteral.FindAllString(expression, -1),
	}
	n, err := red.reduce()
	if err != nil {
		return "", err
	}
	return n.String(), nil
}

// expandExponents rewrites exponent literals as parenthesised plain decimals,
// so a literal directly followed by another number stays a syntax error.
func expandExponents(expression string) (string, error) {
	var parseErr error
	out := exponentLiteral.ReplaceAllStringFunc(expression, func(lit string) string {
		v, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			parseErr = fmt.Errorf("%w: literal %q", ErrSyntax, lit)
			return lit
		}
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.ContainsRune(s, '.') {
			s += ".0"
		}
		return "(" + s + ")"
	})
	return out, parseErr
}

func isExpressionRune(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case strings.ContainsRune(".+-*/%() \t", r):
		return true
	}
	return false
}

// collapseSigns folds every run of + and - into one sign: "-" when the run
// holds an odd number of minuses, "+" otherwise. A "+" where an operand is
// expected is a no-op and is dropped, so "2*--3" becomes "2*3".
func collapseSigns(expression string) string {
	var b strings.Builder
	operand := true
	for i := 0; i < len(expression); {
		c := expression[i]
		if c != '+' && c != '-' {
			b.WriteByte(c)
			switch c {
			case ' ', '\t':
			case '(', '*', '/', '%':
				operand = true
			default:
				operand = false
			}
			i++
			continue
		}

		negative := false
		for ; i < len(expression) && strings.IndexByte("+- \t", expression[i]) >= 0; i++ {
			if expression[i] == '-' {
				negative = !negative
			}
		}
		switch {
		case negative:
			b.WriteByte('-')
		case !operand:
			b.WriteByte('+')
		}
		b.WriteByte(' ')
		operand = true
	}
	return b.String()
}

// checkTokens enforces strict infix order: operands and operators must
// alternate, and the expression cannot end on an operator.
func checkTokens(tokens []govaluate.ExpressionToken) error {
	expectOperand := true
	for _, tok := range tokens {
		if err := checkToken(tok); err != nil {
			return err
		}

		ok := true
		switch tok.Kind {
		case govaluate.NUMERIC:
			ok = expectOperand
			expectOperand = false
		case govaluate.CLAUSE_CLOSE:
			ok = !expectOperand
			expectOperand = false
		case govaluate.MODIFIER:
			ok = !expectOperand
			expectOperand = true
		case govaluate.PREFIX, govaluate.CLAUSE:
			ok = expectOperand
			expectOperand = true
		}
		if !ok {
			return fmt.Errorf("%w: unexpected %v", ErrSyntax, tok.Value)
		}
	}
	if expectOperand {
		return fmt.Errorf("%w: incomplete expression", ErrSyntax)
	}
	return nil
}

func checkToken(tok govaluate.ExpressionToken) error {
	switch tok.Kind {
	case govaluate.NUMERIC, govaluate.CLAUSE, govaluate.CLAUSE_CLOSE:
		return nil
	case govaluate.PREFIX:
		if fmt.Sprint(tok.Value) == "-" {
			return nil
		}
	case govaluate.MODIFIER:
		switch fmt.Sprint(tok.Value) {
		case "+", "-", "*", "/", "%":
			return nil
		}
	}
	return fmt.Errorf("%w: %v", ErrUnsupported, tok.Value)
}

// reducer evaluates a checked token stream by precedence climbing. literals
// holds the source text of the NUMERIC tokens, in token order.
type reducer struct {
	tokens   []govaluate.ExpressionToken
	literals []string
	pos      int
	lit      int
}

func (r *reducer) reduce() (number, error) {
	n, err := r.sum()
	if err != nil {
		return number{}, err
	}
	if r.pos != len(r.tokens) {
		return number{}, fmt.Errorf("%w: unexpected %v", ErrSyntax, r.tokens[r.pos].Value)
	}
	return n, nil
}

func (r *reducer) sum() (number, error) {
	acc, err := r.product()
	for err == nil {
		op, ok := r.modifier("+", "-")
		if !ok {
			break
		}
		var rhs number
		if rhs, err = r.product(); err == nil {
			acc, err = apply(op, acc, rhs)
		}
	}
	return acc, err
}

func (r *reducer) product() (number, error) {
	acc, err := r.unary()
	for err == nil {
		op, ok := r.modifier("*", "/", "%")
		if !ok {
			break
		}
		var rhs number
		if rhs, err = r.unary(); err == nil {
			acc, err = apply(op, acc, rhs)
		}
	}
	return acc, err
}

func (r *reducer) unary() (number, error) {
	if r.pos < len(r.tokens) && r.tokens[r.pos].Kind == govaluate.PREFIX {
		r.pos++
		n, err := r.unary()
		if err != nil {
			return number{}, err
		}
		return n.neg(), nil
	}
	return r.primary()
}

func (r *reducer) primary() (number, error) {
	if r.pos >= len(r.tokens) {
		return number{}, fmt.Errorf("%w: incomplete expression", ErrSyntax)
	}
	tok := r.tokens[r.pos]
	r.pos++

	switch tok.Kind {
	case govaluate.NUMERIC:
		if r.lit >= len(r.literals) {
			return number{}, fmt.Errorf("%w: literal %v", ErrSyntax, tok.Value)
		}
		text := r.literals[r.lit]
		r.lit++
		return parseNumber(text)
	case govaluate.CLAUSE:
		n, err := r.sum()
		if err != nil {
			return number{}, err
		}
		if r.pos >= len(r.tokens) || r.tokens[r.pos].Kind != govaluate.CLAUSE_CLOSE {
			return number{}, fmt.Errorf("%w: unbalanced parentheses", ErrSyntax)
		}
		r.pos++
		return n, nil
	}
	return number{}, fmt.Errorf("%w: unexpected %v", ErrSyntax, tok.Value)
}

func (r *reducer) modifier(ops ...string) (string, bool) {
	if r.pos >= len(r.tokens) || r.tokens[r.pos].Kind != govaluate.MODIFIER {
		return "", false
	}
	op := fmt.Sprint(r.tokens[r.pos].Value)
	for _, want := range ops {
		if op == want {
			r.pos++
			return op, true
		}
	}
	return "", false
}
