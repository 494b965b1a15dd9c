package useragent

import "context"

// UserAgent is the typed entry point behind Get, Call and the browser
// methods: a random user agent for the browser identifier name, narrowed by
// the record predicates of filter.
func (a *Agent) UserAgent(ctx context.Context, name string, filter Filter, refresh bool) (string, bool, error) {
	f := filter.predicates()
	f.Name = KebabCase(name)
	return a.Random(ctx, f, refresh)
}

// Get returns a random user agent for a browser identifier such as
// "chrome" or "internetExplorer", served from cache when possible.
func (a *Agent) Get(ctx context.Context, name string) (string, bool, error) {
	return a.UserAgent(ctx, name, Filter{}, false)
}

// Call is the loosely typed form of UserAgent. args may be:
//
//	()                      no filter, cached
//	(true)                  no filter, refresh
//	(filter)                Filter, *Filter or map[string]string
//	(filter, refresh bool)
//
// Only the software_version, operating_system and hardware_type keys of a
// map are used; other arguments are ignored.
func (a *Agent) Call(ctx context.Context, name string, args ...any) (string, bool, error) {
	filter, refresh := parseCallArgs(args)
	return a.UserAgent(ctx, name, filter, refresh)
}

func parseCallArgs(args []any) (Filter, bool) {
	if len(args) == 1 {
		if refresh, ok := args[0].(bool); ok && refresh {
			return Filter{}, true
		}
	}

	var filter Filter
	if len(args) > 0 {
		switch v := args[0].(type) {
		case Filter:
			filter = v.predicates()
		case *Filter:
			if v != nil {
				filter = v.predicates()
			}
		case map[string]string:
			filter = Filter{
				SoftwareVersion: v["software_version"],
				OperatingSystem: v["operating_system"],
				HardwareType:    v["hardware_type"],
			}
		}
	}

	var refresh bool
	if len(args) > 1 {
		refresh, _ = args[1].(bool)
	}

	return filter, refresh
}
