package mdc

import (
	"fmt"
	"strings"

	mdcerrors "github.com/vango-dev/mdc/internal/errors"
	"github.com/vango-dev/mdc/pkg/component"
	"github.com/vango-dev/mdc/pkg/widget"
)

// unsupported reports a variation the component does not render.
func unsupported(s *component.Scope, name, variation string, supported ...string) error {
	quoted := make([]string, len(supported))
	for i, v := range supported {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return mdcerrors.New("E101").
		InComponent(s.Path()).
		WithDetail(fmt.Sprintf("%s has no %q variation.", name, variation)).
		WithSuggestion("use one of " + strings.Join(quoted, ", ")).
		Wrap(fmt.Errorf("%w: %s", widget.ErrUnsupportedVariation, variation))
}

func missing(s *component.Scope, name, field string) error {
	return mdcerrors.New("E106").
		InComponent(s.Path()).
		WithDetail(fmt.Sprintf("%s requires %s.", name, field))
}
