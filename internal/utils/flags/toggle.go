package flags

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/pflag"
)

const (
	toggleTrueCanonicalValue      = "true"
	toggleFalseCanonicalValue     = "false"
	toggleParseErrorTemplate      = "invalid toggle value %q"
	toggleTruePlaceholder         = "<YES|no>"
	toggleFalsePlaceholder        = "<yes|NO>"
	toggleUsageEmptyTemplate      = "`%s`"
	toggleUsageFullTemplate       = "`%s` %s"
	toggleLongPrefix              = "--"
	toggleShortPrefix             = "-"
	toggleValueSeparator          = "="
	toggleArgumentsTerminator     = "--"
	toggleValueTypeName           = "bool"
	toggleShorthandExpectedLength = 1
)

var (
	toggleTrueLiterals  = map[string]struct{}{"true": {}, "yes": {}, "on": {}, "1": {}, "t": {}, "y": {}}
	toggleFalseLiterals = map[string]struct{}{"false": {}, "no": {}, "off": {}, "0": {}, "f": {}, "n": {}}

	toggleRegistryMutex sync.RWMutex
	toggleRegistry      = map[string]struct{}{}
)

// AddToggleFlag registers a boolean flag that accepts yes/no style values in addition to true/false.
func AddToggleFlag(flagSet *pflag.FlagSet, target *bool, name string, shorthand string, defaultValue bool, usage string) {
	if flagSet == nil || len(name) == 0 {
		return
	}

	value := &toggleValue{target: target}
	value.assign(defaultValue)

	if len(shorthand) > 0 {
		flagSet.VarP(value, name, shorthand, usage)
	} else {
		flagSet.Var(value, name, usage)
	}

	registeredFlag := flagSet.Lookup(name)
	if registeredFlag == nil {
		return
	}
	registeredFlag.NoOptDefVal = toggleTrueCanonicalValue
	registeredFlag.Usage = formatToggleUsage(usage, defaultValue)

	registerToggle(toggleLongPrefix + name)
	if len(shorthand) > 0 {
		registerToggle(toggleShortPrefix + shorthand)
	}
}

// NormalizeToggleArguments rewrites "--flag value" into "--flag=value" for registered toggles so the
// separate-value form parses like the inline form.
func NormalizeToggleArguments(arguments []string) []string {
	if len(arguments) == 0 {
		return nil
	}

	normalized := make([]string, 0, len(arguments))
	for index := 0; index < len(arguments); index++ {
		current := arguments[index]
		if current == toggleArgumentsTerminator {
			normalized = append(normalized, arguments[index:]...)
			break
		}

		if !isRegisteredToggle(current) || index+1 >= len(arguments) {
			normalized = append(normalized, current)
			continue
		}

		nextArgument := arguments[index+1]
		if strings.HasPrefix(nextArgument, toggleShortPrefix) || !isToggleLiteral(nextArgument) {
			normalized = append(normalized, current)
			continue
		}

		normalized = append(normalized, current+toggleValueSeparator+nextArgument)
		index++
	}

	return normalized
}

type toggleValue struct {
	current bool
	target  *bool
}

func (value *toggleValue) assign(parsed bool) {
	value.current = parsed
	if value.target != nil {
		*value.target = parsed
	}
}

func (value *toggleValue) Set(rawValue string) error {
	parsed, parseError := parseToggleValue(rawValue)
	if parseError != nil {
		return parseError
	}
	value.assign(parsed)
	return nil
}

func (value *toggleValue) String() string {
	if value == nil || !value.current {
		return toggleFalseCanonicalValue
	}
	return toggleTrueCanonicalValue
}

func (value *toggleValue) Type() string {
	return toggleValueTypeName
}

func parseToggleValue(rawValue string) (bool, error) {
	normalizedValue := strings.ToLower(strings.TrimSpace(rawValue))
	if len(normalizedValue) == 0 {
		return true, nil
	}
	if _, isTrue := toggleTrueLiterals[normalizedValue]; isTrue {
		return true, nil
	}
	if _, isFalse := toggleFalseLiterals[normalizedValue]; isFalse {
		return false, nil
	}
	return false, fmt.Errorf(toggleParseErrorTemplate, rawValue)
}

func isToggleLiteral(candidate string) bool {
	_, parseError := parseToggleValue(candidate)
	return parseError == nil && len(strings.TrimSpace(candidate)) > 0
}

func formatToggleUsage(description string, defaultValue bool) string {
	placeholder := toggleFalsePlaceholder
	if defaultValue {
		placeholder = toggleTruePlaceholder
	}
	trimmedDescription := strings.TrimSpace(description)
	if len(trimmedDescription) == 0 {
		return fmt.Sprintf(toggleUsageEmptyTemplate, placeholder)
	}
	return fmt.Sprintf(toggleUsageFullTemplate, placeholder, trimmedDescription)
}

func registerToggle(argument string) {
	toggleRegistryMutex.Lock()
	defer toggleRegistryMutex.Unlock()
	toggleRegistry[argument] = struct{}{}
}

func isRegisteredToggle(argument string) bool {
	if strings.Contains(argument, toggleValueSeparator) {
		return false
	}
	if !strings.HasPrefix(argument, toggleLongPrefix) && len(strings.TrimPrefix(argument, toggleShortPrefix)) != toggleShorthandExpectedLength {
		return false
	}

	toggleRegistryMutex.RLock()
	defer toggleRegistryMutex.RUnlock()
	_, registered := toggleRegistry[argument]
	return registered
}
