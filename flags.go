// Copyright 2024 The irsdk Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// that can be found in the LICENSE file.

package irsdk

// This file supplements the core with the producer's fixed enum/bitfield
// taxonomies. None of it is wired into Value, Snapshot, or any decode
// path — a caller that reads a channel such as "EngineWarnings" as a Bits
// value calls EngineWarningNames(v) itself. These are pure lookup
// functions, not behavior.

// Engine warning bits, as published on the "EngineWarnings" channel.
const (
	EngineWarningWaterTemperature uint32 = 0x00
	EngineWarningFuelPressure     uint32 = 0x02
	EngineWarningOilPressure      uint32 = 0x04
	EngineWarningEngineStalled    uint32 = 0x08
	EngineWarningPitSpeedLimiter  uint32 = 0x10
	EngineWarningRevLimiterActive uint32 = 0x20
)

var engineWarningNames = []struct {
	bit  uint32
	name string
}{
	{EngineWarningFuelPressure, "FuelPressure"},
	{EngineWarningOilPressure, "OilPressure"},
	{EngineWarningEngineStalled, "EngineStalled"},
	{EngineWarningPitSpeedLimiter, "PitSpeedLimiter"},
	{EngineWarningRevLimiterActive, "RevLimiterActive"},
}

// EngineWarningNames returns the set bit names of the "EngineWarnings"
// channel, in declaration order.
func EngineWarningNames(bits uint32) []string {
	var names []string
	for _, e := range engineWarningNames {
		if bits&e.bit != 0 {
			names = append(names, e.name)
		}
	}
	return names
}

// Camera state bits, as published on the "CamState" channel.
const (
	CameraStateIsSessionScreen      uint32 = 0x01
	CameraStateIsScenicActive       uint32 = 0x02
	CameraStateCamToolActive        uint32 = 0x04
	CameraStateUIHidden             uint32 = 0x08
	CameraStateUseAutoShotSelection uint32 = 0x10
	CameraStateUseTemporaryEdits    uint32 = 0x20
	CameraStateUseKeyAcceleration   uint32 = 0x40
	CameraStateUseKey10xAccel       uint32 = 0x80
	CameraStateUseMouseAimMode      uint32 = 0x100
)

var cameraStateNames = []struct {
	bit  uint32
	name string
}{
	{CameraStateIsSessionScreen, "IsSessionScreen"},
	{CameraStateIsScenicActive, "IsScenicActive"},
	{CameraStateCamToolActive, "CamToolActive"},
	{CameraStateUIHidden, "UIHidden"},
	{CameraStateUseAutoShotSelection, "UseAutoShotSelection"},
	{CameraStateUseTemporaryEdits, "UseTemporaryEdits"},
	{CameraStateUseKeyAcceleration, "UseKeyAcceleration"},
	{CameraStateUseKey10xAccel, "UseKey10xAcceleration"},
	{CameraStateUseMouseAimMode, "UseMouseAimMode"},
}

// CameraStateNames returns the set bit names of the "CamState" channel.
func CameraStateNames(bits uint32) []string {
	var names []string
	for _, e := range cameraStateNames {
		if bits&e.bit != 0 {
			names = append(names, e.name)
		}
	}
	return names
}

// Pit service request bits, as published on the "PitSvFlags" channel.
const (
	PitServiceChangeLeftFront  uint32 = 0x01
	PitServiceChangeRightFront uint32 = 0x02
	PitServiceChangeLeftRear   uint32 = 0x04
	PitServiceChangeRightRear  uint32 = 0x08
	PitServiceRefuel           uint32 = 0x10
	PitServiceScreenTearoff    uint32 = 0x20
	PitServiceFastRepair       uint32 = 0x40
)

var pitServiceNames = []struct {
	bit  uint32
	name string
}{
	{PitServiceChangeLeftFront, "ChangeLeftFront"},
	{PitServiceChangeRightFront, "ChangeRightFront"},
	{PitServiceChangeLeftRear, "ChangeLeftRear"},
	{PitServiceChangeRightRear, "ChangeRightRear"},
	{PitServiceRefuel, "Refuel"},
	{PitServiceScreenTearoff, "ScreenTearoff"},
	{PitServiceFastRepair, "FastRepair"},
}

// PitServiceNames returns the set bit names of the "PitSvFlags" channel.
func PitServiceNames(bits uint32) []string {
	var names []string
	for _, e := range pitServiceNames {
		if bits&e.bit != 0 {
			names = append(names, e.name)
		}
	}
	return names
}

// ResetAction is the value published on the "EnterExitReset" channel.
type ResetAction int32

const (
	ResetActionEnter ResetAction = iota
	ResetActionExit
	ResetActionReset
)

func (a ResetAction) String() string {
	switch a {
	case ResetActionEnter:
		return "Enter"
	case ResetActionExit:
		return "Exit"
	case ResetActionReset:
		return "Reset"
	default:
		return "Unknown"
	}
}

// DisplayUnits is the value published on the "DisplayUnits" channel.
type DisplayUnits int32

const (
	DisplayUnitsImperial DisplayUnits = iota
	DisplayUnitsMetric
)

func (u DisplayUnits) String() string {
	switch u {
	case DisplayUnitsImperial:
		return "Imperial"
	case DisplayUnitsMetric:
		return "Metric"
	default:
		return "Unknown"
	}
}

// TrackSurfaceName maps the "PlayerTrackSurface" channel's raw index onto
// the producer's named surface bands. The numbered bands (asphalt,
// concrete, rumble, grass, dirt, gravel each span several adjacent
// indices for different wear/condition states) are reported by band name
// alone; the index within a band is not part of the result.
func TrackSurfaceName(idx int32) string {
	switch {
	case idx == -1:
		return "NotInWorld"
	case idx == 0:
		return "Undefined"
	case idx >= 1 && idx <= 4:
		return "Asphalt"
	case idx == 6 || idx == 7:
		return "Concrete"
	case idx == 8 || idx == 9:
		return "RacingDirt"
	case idx == 10 || idx == 11:
		return "Paint"
	case idx >= 12 && idx <= 15:
		return "Rumble"
	case idx >= 16 && idx <= 19:
		return "Grass"
	case idx >= 20 && idx <= 23:
		return "Dirt"
	case idx == 24:
		return "Sand"
	case idx >= 25 && idx <= 28:
		return "Gravel"
	case idx == 29:
		return "Grasscrete"
	case idx == 30:
		return "Astroturf"
	default:
		return "Unknown"
	}
}
