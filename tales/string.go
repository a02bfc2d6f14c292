package tales

import (
	"fmt"
	"regexp"
)

var (
	dollarBraceRe = regexp.MustCompile(`\$\{([^}]*)\}`)
	dollarNameRe  = regexp.MustCompile(`\$(\w*)`)
)

// ProcessString interpolates "${expr}" and "$name" spans, each evaluated as
// a full expression with default type path. The two substitution passes are
// sequential: output of the explicit-form pass is re-scanned by the
// bare-form pass, so a substituted value containing "$" is substituted
// again. That ordering is part of the contract.
func ProcessString(s string, ctxs ...Context) (any, error) {
	var firstErr error
	sub := func(expr string) string {
		v, err := Value(expr, ctxs...)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			return ""
		}
		return Text(v)
	}
	out := dollarBraceRe.ReplaceAllStringFunc(s, func(m string) string {
		return sub(m[2 : len(m)-1])
	})
	out = dollarNameRe.ReplaceAllStringFunc(out, func(m string) string {
		return sub(m[1:])
	})
	if firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}

// Text renders a value for splicing into document text. Undefined renders
// as the empty string.
func Text(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	}
	return fmt.Sprint(v)
}
