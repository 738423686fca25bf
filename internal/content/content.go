// Package content holds the static data shown on the portfolio: the
// profile, the social links and the project cards. None of it is computed,
// it is read once at startup and passed around by value.
package content

import (
	"bytes"
	_ "embed"
	"net/url"
	"os"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed portfolio.yaml
var defaultPortfolio []byte

type Profile struct {
	Name       string   `yaml:"name" validate:"required"`
	Headline   string   `yaml:"headline" validate:"required"`
	Highlights []string `yaml:"highlights" validate:"dive,required"`
	Bio        string   `yaml:"bio"`
	Footer     string   `yaml:"footer"`
}

type SocialLink struct {
	Label string `yaml:"label" validate:"required"`
	Href  string `yaml:"href" validate:"required,link"`
}

type Project struct {
	Title       string   `yaml:"title" validate:"required"`
	Description string   `yaml:"description" validate:"required"`
	Tags        []string `yaml:"tags" validate:"min=1,dive,required"`
	Link        string   `yaml:"link" validate:"required,link"`
}

// Returns true when the project carries the tag, ignoring case.
func (p Project) HasTag(tag string) bool {
	for _, candidate := range p.Tags {
		if strings.EqualFold(candidate, strings.TrimSpace(tag)) {
			return true
		}
	}
	return false
}

type Portfolio struct {
	Profile  Profile      `yaml:"profile"`
	Links    []SocialLink `yaml:"links" validate:"dive"`
	Projects []Project    `yaml:"projects" validate:"min=1,dive"`
}

// Returns the portfolio bundled with the binary.
func Default() (Portfolio, error) {
	return Parse(defaultPortfolio)
}

// Loads the portfolio from a yaml file, or the bundled one when path is
// empty.
func Load(path string) (Portfolio, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Portfolio{}, errors.Wrap(err, "could not read portfolio")
	}

	portfolio, err := Parse(data)
	if err != nil {
		return Portfolio{}, errors.Wrapf(err, "portfolio %s", path)
	}
	return portfolio, nil
}

// Decodes and validates a yaml document.
func Parse(data []byte) (Portfolio, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var portfolio Portfolio
	if err := decoder.Decode(&portfolio); err != nil {
		return Portfolio{}, errors.Wrap(err, "could not decode portfolio")
	}

	if err := validatorInstance().Struct(portfolio); err != nil {
		return Portfolio{}, errors.Wrap(err, "invalid portfolio")
	}

	return portfolio, nil
}

var (
	validatorOnce sync.Once
	validate      *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validate = validator.New()

		// Either a web address or a mail address.
		_ = validate.RegisterValidation("link", func(fl validator.FieldLevel) bool {
			parsed, err := url.Parse(strings.TrimSpace(fl.Field().String()))
			if err != nil {
				return false
			}

			switch strings.ToLower(parsed.Scheme) {
			case "http", "https":
				return parsed.Host != ""
			case "mailto":
				return strings.Contains(parsed.Opaque, "@")
			default:
				return false
			}
		})
	})
	return validate
}
