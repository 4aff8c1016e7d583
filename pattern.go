package jsonschema

import (
	"regexp"
	"sync"
)

var (
	patternCacheMu sync.Mutex
	patternCache   = make(map[string]*regexp.Regexp)
)

// evaluatePattern checks that a string instance matches the regular
// expression named by "pattern". Non-string instances always pass.
// Compiled patterns are cached by source text across calls, since the same
// schema object is typically evaluated against many instances.
func evaluatePattern(ctx *Context, value any, instance any, _ *Object) []*ValidationError {
	pattern, ok := value.(string)
	if !ok {
		return nil
	}
	str, ok := instance.(string)
	if !ok {
		return nil
	}
	re, err := compiledPattern(pattern)
	if err != nil {
		return []*ValidationError{ctx.newError("invalid_pattern", "Invalid regular expression pattern {pattern}", map[string]any{
			"pattern": pattern,
		})}
	}
	if !re.MatchString(str) {
		return []*ValidationError{ctx.newError("pattern_mismatch", "Value does not match the required pattern {pattern}", map[string]any{
			"pattern": pattern,
			"value":   str,
		})}
	}
	return nil
}

func compiledPattern(pattern string) (*regexp.Regexp, error) {
	patternCacheMu.Lock()
	defer patternCacheMu.Unlock()
	if re, ok := patternCache[pattern]; ok {
		return re, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	patternCache[pattern] = re
	return re, nil
}
