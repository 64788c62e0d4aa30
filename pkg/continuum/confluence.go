package continuum

import "fmt"

// VerifyDeterminism compiles the events repeatedly and checks that
// every run produces the same fingerprint. This guards against hidden
// nondeterminism (map iteration order, unstable sorting) leaking into
// compiled timelines. Returns the fingerprint.
func VerifyDeterminism(events []Event, runs int, opts ...Option) (string, error) {
	var want string
	for i := 0; i < runs; i++ {
		timeline, err := Compile(events, opts...)
		if err != nil {
			return "", err
		}
		got, err := timeline.Fingerprint()
		if err != nil {
			return "", err
		}
		if i == 0 {
			want = got
			continue
		}
		if got != want {
			return "", fmt.Errorf("determinism failed: run %d produced fingerprint %s, expected %s", i, got, want)
		}
	}
	return want, nil
}

// VerifyConfluence checks that compilation is independent of input
// order by recompiling deterministic permutations of the events and
// comparing fingerprints.
//
// Events sharing both date and kind keep their relative input order
// through the stable sort, so their permutations may legitimately
// change the result; confluence is only claimed for event sets without
// such ties, and tied inputs are rejected.
func VerifyConfluence(events []Event, permutations int, opts ...Option) (string, error) {
	seen := make(map[[2]string]bool, len(events))
	for _, ev := range events {
		key := [2]string{string(ev.EventDate()), string(ev.EventKind())}
		if seen[key] {
			return "", fmt.Errorf("events tie on date %q kind %q: order is input-defined, confluence not applicable",
				ev.EventDate(), ev.EventKind())
		}
		seen[key] = true
	}

	want, err := VerifyDeterminism(events, 2, opts...)
	if err != nil {
		return "", err
	}

	for i := 0; i < permutations; i++ {
		shuffled := make([]Event, len(events))
		copy(shuffled, events)
		for j := len(shuffled) - 1; j > 0; j-- {
			k := (i + j) % (j + 1)
			shuffled[j], shuffled[k] = shuffled[k], shuffled[j]
		}

		timeline, err := Compile(shuffled, opts...)
		if err != nil {
			return "", fmt.Errorf("permutation %d failed to compile: %w", i, err)
		}
		got, err := timeline.Fingerprint()
		if err != nil {
			return "", err
		}
		if got != want {
			return "", fmt.Errorf("confluence failed: permutation %d produced fingerprint %s, expected %s", i, got, want)
		}
	}

	return want, nil
}
