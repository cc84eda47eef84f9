package steam_steamid

import (
	"fmt"
	"math/big"
	"regexp"
	"strconv"
)

// SteamID struct represents a Steam ID
type SteamID struct {
	Universe  int
	Type      int
	Instance  int
	AccountID uint32
}

// Constants for SteamID Universe, Type, and Instance
const (
	UniverseInvalid = iota
	UniversePublic
	UniverseBeta
	UniverseInterval
	UniverseDev
)

const (
	TypeInvalid = iota
	TypeIndividual
	TypeMultiseat
	TypeGameServer
	TypeAnonGameServer
	TypePending
	TypeContentServer
	TypeClan
	TypeChat
	TypeP2PSuperSeeder
	TypeAnonUser
)

const (
	InstanceAll = iota
	InstanceDesktop
	InstanceConsole
	InstanceWeb = 4
)

const (
	AccountIDMask       = 0xFFFFFFFF
	AccountInstanceMask = 0x000FFFFF
)

// Steam64Offset is the SteamID64 of account 0 of an individual desktop user in
// the public universe. Adding a userdata folder number to it yields the id the
// Web API expects.
const Steam64Offset uint64 = 76561197960265728

var digitsPattern = regexp.MustCompile(`^[0-9]+$`)

var steam3Pattern = regexp.MustCompile(`^\[U:([0-5]):([0-9]+)(:[0-9]+)?\]$`)

// ToSteam64 converts the numeric name of a userdata folder to its SteamID64.
// The sum is exact for any digit string: it is neither range checked nor
// wrapped at 64 bits.
func ToSteam64(accountID string) (string, error) {
	if !digitsPattern.MatchString(accountID) {
		return "", fmt.Errorf("invalid account id %q", accountID)
	}
	id, ok := new(big.Int).SetString(accountID, 10)
	if !ok {
		return "", fmt.Errorf("invalid account id %q", accountID)
	}
	return id.Add(id, new(big.Int).SetUint64(Steam64Offset)).String(), nil
}

// FromAccountID builds the SteamID of an individual public desktop account.
func FromAccountID(accountID uint32) *SteamID {
	return &SteamID{
		Universe:  UniversePublic,
		Type:      TypeIndividual,
		Instance:  InstanceDesktop,
		AccountID: accountID,
	}
}

// NewSteamID parses a SteamID64 or a Steam3 individual id ("[U:1:22202]").
func NewSteamID(input string) (*SteamID, error) {
	if mat := steam3Pattern.FindStringSubmatch(input); mat != nil {
		universe, _ := strconv.Atoi(mat[1])
		accountID, err := strconv.ParseUint(mat[2], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("unknown ID: %s", input)
		}
		sid := FromAccountID(uint32(accountID))
		sid.Universe = universe
		if mat[3] != "" {
			sid.Instance, _ = strconv.Atoi(mat[3][1:])
		}
		return sid, nil
	}

	inputVal, err := strconv.ParseUint(input, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("unknown ID: %s", input)
	}
	return &SteamID{
		AccountID: uint32(inputVal & AccountIDMask),
		Instance:  int((inputVal >> 32) & AccountInstanceMask),
		Type:      int((inputVal >> 52) & 0xF),
		Universe:  int((inputVal >> 56) & 0xFF),
	}, nil
}

// SID64 renders the 64-bit form of the id.
func (sid *SteamID) SID64() uint64 {
	return uint64(sid.Universe)<<56 |
		uint64(sid.Type)<<52 |
		uint64(sid.Instance&AccountInstanceMask)<<32 |
		uint64(sid.AccountID)
}

// Steam3 renders Steam3 ID
func (sid *SteamID) Steam3() string {
	if sid.Type == TypeIndividual && sid.Instance != InstanceDesktop {
		return fmt.Sprintf("[U:%d:%d:%d]", sid.Universe, sid.AccountID, sid.Instance)
	}
	return fmt.Sprintf("[U:%d:%d]", sid.Universe, sid.AccountID)
}

// IsValid reports whether the id can name an individual Steam user.
func (sid *SteamID) IsValid() bool {
	if sid.Universe <= UniverseInvalid || sid.Universe > UniverseDev {
		return false
	}
	return sid.Type == TypeIndividual && sid.AccountID != 0 && sid.Instance <= InstanceWeb
}
