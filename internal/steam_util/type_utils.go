package steam_util

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/GoogleCloudPlatform/galog"
)

// Types prefixed with "Vdf" are minimal representations of the structure of a
// particular vdf file, limited to what we use. The parser hands us
// map[string]interface{} which populateStructFromMap "unmarshals" into them.

type VdfLoginUsers struct {
	Users map[uint64]SteamUser
}
type SteamUser struct {
	SteamID64   uint64
	AccountId   string
	AccountName string
	PersonaName string
	MostRecent  int
	Timestamp   int
}

func populateStructFromMap(dataUnknown interface{}, result interface{}) error {
	v := reflect.ValueOf(result).Elem()
	t := v.Type()

	// vdf keys are matched case-insensitively against the struct field names.
	fieldMap := make(map[string]string)
	for i := 0; i < v.NumField(); i++ {
		fieldMap[strings.ToLower(t.Field(i).Name)] = t.Field(i).Name
	}

	data, ok := dataUnknown.(map[string]interface{})
	if !ok {
		return errors.New("data isn't a map[string]interface{}")
	}

	for key, value := range data {
		structFieldName, found := fieldMap[strings.ToLower(key)]
		if !found {
			continue
		}
		field := v.FieldByName(structFieldName)
		if !field.IsValid() || !field.CanSet() {
			continue
		}
		fieldType := field.Type()

		switch {
		case field.Kind() == reflect.Struct:
			nestedMap, ok := value.(map[string]interface{})
			if !ok {
				continue
			}
			nestedStructPtr := reflect.New(fieldType)
			if err := populateStructFromMap(nestedMap, nestedStructPtr.Interface()); err != nil {
				return err
			}
			field.Set(nestedStructPtr.Elem())

		// Maps keyed by integers, e.g. SteamID64 -> user.
		case field.Kind() == reflect.Map && fieldType.Key().Kind() >= reflect.Int && fieldType.Key().Kind() <= reflect.Uint64:
			mapData, ok := value.(map[string]interface{})
			if !ok {
				continue
			}
			newMap := reflect.MakeMap(fieldType)
			for mapKey, mapValue := range mapData {
				uintKey, err := strconv.ParseUint(mapKey, 10, 64)
				if err != nil {
					galog.Debugf("Cannot convert key %s of field %s to an integer: %v", mapKey, structFieldName, err)
					continue
				}
				intKey := reflect.ValueOf(uintKey).Convert(fieldType.Key())

				nestedMap, ok := mapValue.(map[string]interface{})
				if !ok || fieldType.Elem().Kind() != reflect.Struct {
					continue
				}
				nestedStructPtr := reflect.New(fieldType.Elem())
				if err := populateStructFromMap(nestedMap, nestedStructPtr.Interface()); err != nil {
					return err
				}
				newMap.SetMapIndex(intKey, nestedStructPtr.Elem())
			}
			field.Set(newMap)

		// The text vdf format only has strings, numbers arrive as such.
		case field.Kind() == reflect.Int:
			str, ok := value.(string)
			if !ok {
				continue
			}
			intValue, err := strconv.Atoi(str)
			if err != nil {
				galog.Debugf("Cannot convert %q to int for field %s: %v", str, structFieldName, err)
				continue
			}
			field.SetInt(int64(intValue))

		default:
			val := reflect.ValueOf(value)
			if !val.Type().ConvertibleTo(fieldType) {
				galog.Debugf("Cannot convert %s to %s for field %s", val.Type(), fieldType, structFieldName)
				continue
			}
			field.Set(val.Convert(fieldType))
		}
	}
	return nil
}
