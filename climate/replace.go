package climate

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"go.ngs.io/climate-tools/domain"
	"go.ngs.io/climate-tools/match"
)

// Replacer overwrites dataset variables chosen by name similarity or by rank.
type Replacer struct {
	matcher match.Matcher
	logger  logrus.FieldLogger
}

// NewReplacer creates a new replacer. A nil matcher uses a
// LevenshteinMatcher and a nil logger the logrus standard logger.
func NewReplacer(matcher match.Matcher, logger logrus.FieldLogger) *Replacer {
	if matcher == nil {
		matcher = match.NewLevenshteinMatcher()
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Replacer{
		matcher: matcher,
		logger:  logger,
	}
}

// ReplaceByFuzzyName overwrites variables of target IN PLACE and returns it.
//
// For every variable of reference, the target variable whose name is most
// similar is replaced according to the rank of the reference variable:
// rank 4 fills it with the value of scalar, rank 5 assigns one copy of the
// value per element (a plain fill if that does not fit), anything else is
// skipped. On error, variables handled before the failing one stay replaced.
func (r *Replacer) ReplaceByFuzzyName(target *domain.Dataset, scalar *domain.Array, reference *domain.Dataset) (*domain.Dataset, error) {
	switch {
	case target == nil:
		return nil, fmt.Errorf("%w: target dataset", domain.ErrNilInput)
	case scalar == nil:
		return nil, fmt.Errorf("%w: replacement value", domain.ErrNilInput)
	case reference == nil:
		return nil, fmt.Errorf("%w: reference dataset", domain.ErrNilInput)
	}

	value, err := scalar.Item()
	if err != nil {
		return nil, fmt.Errorf("invalid replacement value: %w", err)
	}

	for _, ref := range reference.Variables() {
		name, err := r.matcher.BestMatch(ref.Name, target.VariableNames())
		if err != nil {
			return target, fmt.Errorf("failed to match %s: %w", ref.Name, err)
		}
		matched, ok := target.Variable(name)
		if !ok {
			return target, fmt.Errorf("matcher returned unknown variable %q for %s", name, ref.Name)
		}

		r.logger.WithFields(logrus.Fields{
			"reference": ref.Name,
			"match":     name,
			"rank":      ref.Rank(),
		}).Debug("replacing variable")

		source := payload{scalar: value}
		if err := classify(ref.Rank(), source, matched.Size()).apply(matched); err != nil {
			return target, fmt.Errorf("failed to replace %s: %w", name, err)
		}
	}

	return target, nil
}

// ReplaceByShape overwrites variables of target IN PLACE and returns it.
//
// Rank-4 variables receive a copy of source; rank-5 variables receive source
// repeated MonthlyLevels times along a new axis at position 2. Variables of
// any other rank are skipped. Shape mismatches are returned as errors, with
// earlier variables already replaced.
func (r *Replacer) ReplaceByShape(target *domain.Dataset, source *domain.Array) (*domain.Dataset, error) {
	switch {
	case target == nil:
		return nil, fmt.Errorf("%w: target dataset", domain.ErrNilInput)
	case source == nil:
		return nil, fmt.Errorf("%w: source array", domain.ErrNilInput)
	}

	for _, v := range target.Variables() {
		if err := classify(v.Rank(), payload{array: source}, v.Size()).apply(v); err != nil {
			return target, fmt.Errorf("failed to replace %s: %w", v.Name, err)
		}
	}
	return target, nil
}

// ReplaceByFuzzyName runs Replacer.ReplaceByFuzzyName with the default matcher.
func ReplaceByFuzzyName(target *domain.Dataset, scalar *domain.Array, reference *domain.Dataset) (*domain.Dataset, error) {
	return NewReplacer(nil, nil).ReplaceByFuzzyName(target, scalar, reference)
}

// ReplaceByShape runs Replacer.ReplaceByShape.
func ReplaceByShape(target *domain.Dataset, source *domain.Array) (*domain.Dataset, error) {
	return NewReplacer(nil, nil).ReplaceByShape(target, source)
}
