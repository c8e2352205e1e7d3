package jobboard

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Candidate is the content of a profile file: the profile itself plus the identity of its owner.
type Candidate struct {
	Identity `mapstructure:",squash"`
	Profile  Profile `mapstructure:"profile"`
}

// LoadCandidate reads a profile file. Any format supported by viper (json, yaml, toml) is accepted.
func LoadCandidate(path string) (*Candidate, error) {
	settings, err := readFile(path)
	if err != nil {
		return nil, err
	}

	var candidate Candidate
	if err := Decode(settings, &candidate); err != nil {
		return nil, fmt.Errorf("decoding profile file %q: %w", path, err)
	}
	candidate.Profile.normalize()

	return &candidate, nil
}

// LoadJobs reads a jobs file with the postings listed under the "jobs" key.
func LoadJobs(path string) (*Jobs, error) {
	settings, err := readFile(path)
	if err != nil {
		return nil, err
	}

	jobs, err := DecodeJobs(settings["jobs"])
	if err != nil {
		return nil, fmt.Errorf("decoding jobs file %q: %w", path, err)
	}

	return jobs, nil
}

// DecodeProfile converts a loosely typed profile record. A nil record yields a nil profile.
func DecodeProfile(raw any) (*Profile, error) {
	if raw == nil {
		return nil, nil
	}

	var profile Profile
	if err := Decode(raw, &profile); err != nil {
		return nil, err
	}
	profile.normalize()

	return &profile, nil
}

func DecodeIdentity(raw any) (*Identity, error) {
	if raw == nil {
		return nil, nil
	}

	var identity Identity
	if err := Decode(raw, &identity); err != nil {
		return nil, err
	}
	identity.Name = strings.TrimSpace(identity.Name)
	identity.Email = strings.TrimSpace(identity.Email)

	return &identity, nil
}

// DecodeJobs converts loosely typed job records into postings.
func DecodeJobs(raw any) (*Jobs, error) {
	if raw == nil {
		return &Jobs{}, nil
	}

	var items []*Job
	if err := Decode(raw, &items); err != nil {
		return nil, err
	}

	jobs := &Jobs{Items: make([]*Job, 0, len(items))}
	for _, job := range items {
		if job == nil {
			continue
		}
		job.normalize()
		jobs.Items = append(jobs.Items, job)
	}

	return jobs, nil
}

// Decode decodes loosely typed input into out. Numbers are accepted for
// strings, comma separated strings for lists and plain strings for skills.
func Decode(input, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			stringToSkillHook,
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}

func stringToSkillHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf(Skill{}) {
		return data, nil
	}
	return Skill{Name: strings.TrimSpace(data.(string))}, nil
}

func readFile(path string) (map[string]any, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("file path is required")
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}

	return v.AllSettings(), nil
}
