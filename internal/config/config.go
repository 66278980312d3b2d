package config

import (
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/tealedge/portal/internal/domain"
)

type Config struct {
	Public  Public
	private Private
}

type Public struct {
	JwtTTLSec        int      `yaml:"jwt_ttl_sec"`
	LogLevel         string   `yaml:"log_level"`
	LogJSON          bool     `yaml:"log_json"`
	SecureCookies    bool     `yaml:"secure_cookies"`
	AllowedOrigins   []string `yaml:"allowed_origins"`
	AdminEmailDomain string   `yaml:"admin_email_domain"` // org suffix required for admin signups
	CoursesFile      string   `yaml:"courses_file"`       // optional catalog override
}

type Private struct {
	JwtKey         string `yaml:"jwt_key"`
	AdminSignupKey string `yaml:"admin_signup_key"`
}

// accessors so the secrets never travel as plain struct fields

func (c *Config) JwtKey() string {
	return c.private.JwtKey
}

func (c *Config) AdminSignupKey() string {
	return c.private.AdminSignupKey
}

func (c *Config) JwtTTL() time.Duration {
	return time.Duration(c.Public.JwtTTLSec) * time.Second
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	if err := yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{public, private}
	cfg.mustValidate()
	return cfg
}

func (c *Config) mustValidate() {
	if c.Public.JwtTTLSec <= 0 {
		panic("config: jwt_ttl_sec is required")
	}
	if c.private.JwtKey == "" {
		panic("config: jwt_key is required")
	}
	if c.private.AdminSignupKey == "" {
		panic("config: admin_signup_key is required")
	}
}

// MustLoadCourses reads a catalog override file holding a plain list of
// courses in the same shape the defaults are seeded with.
func MustLoadCourses(coursesPath string) []domain.Course {
	var parsed struct {
		Courses []domain.Course `yaml:"courses"`
	}
	mustLoadPath(coursesPath, &parsed)
	if len(parsed.Courses) == 0 {
		panic("courses file contains no courses: " + coursesPath)
	}
	return parsed.Courses
}
