package bytebuffer

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/pkg/errors"
)

// ConfPath stores the path the configuration was read from
var ConfPath string

// Config stores the key-value pairs read from ConfPath, it is nil if no
// configuration file was found
var Config map[string]string

// pat stores a valid key-value pattern line
var pat = regexp.MustCompile("^([A-Z0-9_]+)=(.*)$")

// configuration keys, also read from the environment with a BYTEBUFFER_ prefix
const (
	defaultSizeKey = "DEFAULT_SIZE"
	loggingKey     = "LOGGING"
)

func confPath() string {
	if p, ok := os.LookupEnv("BYTEBUFFER_CONF"); ok {
		return p
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}

	return filepath.Join(dir, "bytebuffer.conf")
}

// readConfig parses every KEY=VALUE line in the file at path
func readConfig(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	conf := make(map[string]string)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if matches := pat.FindStringSubmatch(scanner.Text()); matches != nil {
			conf[matches[1]] = matches[2]
		}
	}

	return conf, scanner.Err()
}

// lookup returns the value of key, the environment taking precedence over the
// configuration file
func lookup(key string) (string, bool) {
	if v, ok := os.LookupEnv("BYTEBUFFER_" + key); ok {
		return v, true
	}

	v, ok := Config[key]
	return v, ok
}

// initConfig reads the configuration and applies it. A missing configuration
// file is not an error.
func initConfig() error {
	ConfPath = confPath()
	Config = nil

	if ConfPath != "" {
		conf, err := readConfig(ConfPath)
		switch {
		case err == nil:
			Config = conf
		case !os.IsNotExist(err):
			return errors.Wrap(err, "cannot read configuration")
		}
	}

	return applyConfig()
}

func applyConfig() error {
	if v, ok := lookup(defaultSizeKey); ok {
		n, err := strconv.ParseUint(v, 0, 32)
		if err != nil {
			return errors.Wrapf(err, "invalid %s", defaultSizeKey)
		}
		DefaultSize = uint32(n)
	}

	if v, ok := lookup(loggingKey); ok {
		enable, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrapf(err, "invalid %s", loggingKey)
		}
		EnableLogging(enable)
	}

	return nil
}
