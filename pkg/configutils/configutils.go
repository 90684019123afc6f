package configutils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/spf13/viper"
)

// ImportKey is the config value naming further files to merge in when
// resolving a configuration file.
var ImportKey = "imports"

// ResolveAndMergeFile reads the given configuration file, resolves any
// imports it names, and merges the whole chain into the provided viper.
// Imported files are merged first so the importing file wins on conflicts.
func ResolveAndMergeFile(v *viper.Viper, filePath string) error {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return err
	}

	ext := strings.ToLower(filepath.Ext(filePath))
	if ext == "" {
		return errors.New("configuration file has no extension")
	}
	if !extensionSupported(ext[1:]) {
		return fmt.Errorf("unsupported configuration file extension: %s", ext)
	}

	v.SetConfigType(ext[1:])
	v.SetConfigFile(filePath)

	if err := v.ReadInConfig(); err != nil {
		return err
	}

	chain := []string{}
	visited := map[string]struct{}{}
	if err := collectImports(v, &chain, visited); err != nil {
		return fmt.Errorf("could not resolve configuration imports: %v", err)
	}

	// The root file merges last so its values take precedence.
	chain = append(chain, v.ConfigFileUsed())
	for _, path := range chain {
		if err := mergeConfigFile(v, path); err != nil {
			return fmt.Errorf("merging config %s: %w", path, err)
		}
	}

	return nil
}

func extensionSupported(ext string) bool {
	for _, e := range viper.SupportedExts {
		if ext == e {
			return true
		}
	}
	return false
}

// collectImports walks the import graph depth first. The visited set marks
// files pre-order to break import cycles; chain is appended post-order so
// children end up ahead of their importers in merge order.
func collectImports(v *viper.Viper, chain *[]string, visited map[string]struct{}) error {
	imports := v.GetStringSlice(ImportKey)
	if len(imports) == 0 {
		return nil
	}

	for _, imp := range imports {
		// an empty list entry (e.g. a bare "-") is not an import
		if len(imp) == 0 {
			continue
		}

		var path string
		if imp[0] == os.PathSeparator {
			path = filepath.Clean(imp)
		} else {
			// relative imports resolve against the importing file
			path = filepath.Join(filepath.Dir(v.ConfigFileUsed()), imp)
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			return err
		}

		if _, ok := visited[path]; ok {
			continue
		}
		visited[path] = struct{}{}

		child := viper.New()
		child.SetConfigFile(path)
		if err := child.ReadInConfig(); err != nil {
			return err
		}

		if err := collectImports(child, chain, visited); err != nil {
			return err
		}

		*chain = append(*chain, path)
	}

	return nil
}

func mergeConfigFile(v *viper.Viper, filePath string) error {
	r, err := os.Open(filePath)
	if err != nil {
		return err
	}

	defer func() { _ = r.Close() }()
	return v.MergeConfig(r)
}

// BindEnvsRecursive binds an environment variable for every mapstructure
// tagged field of the given struct, recursing into nested structs so dotted
// config paths like "watch.interval" pick up WATCH_INTERVAL style overrides.
func BindEnvsRecursive(v *viper.Viper, iface interface{}, path string) error {
	val := reflect.ValueOf(iface).Elem()
	typ := val.Type()

	for i := 0; i < val.NumField(); i++ {
		tag := typ.Field(i).Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		fullPath := tag
		if path != "" {
			fullPath = path + "." + tag
		}

		field := val.Field(i)
		if field.Kind() == reflect.Ptr {
			if field.IsNil() && field.Type().Elem().Kind() == reflect.Struct {
				field.Set(reflect.New(field.Type().Elem()))
			}
			field = field.Elem()
		}

		if field.Kind() == reflect.Struct {
			if err := BindEnvsRecursive(v, field.Addr().Interface(), fullPath); err != nil {
				return err
			}
		}

		if err := v.BindEnv(fullPath); err != nil {
			return fmt.Errorf("failed to bind environment variable: %w", err)
		}
	}

	return nil
}
