package sfnt

import "encoding/binary"

// VariationAxis is one axis declared by a face's fvar table.
type VariationAxis struct {
	Tag     Tag
	NameID  uint16
	Min     float64
	Default float64
	Max     float64
}

// NamedInstance is one preset point along the variation space declared by
// fvar, in the order its axes appear in VariationAxes.
type NamedInstance struct {
	SubfamilyNameID  uint16
	Coordinates      []float64
	PostscriptNameID uint16 // 0 if absent
	HasPostscriptID  bool
}

// FvarTable holds a face's declared variation axes and named instances.
type FvarTable struct {
	Axes      []VariationAxis
	Instances []NamedInstance
}

// parseFvar decodes an fvar table. Version must be 1.0; anything else is
// UnsupportedVersion.
func parseFvar(data []byte) (*FvarTable, error) {
	if len(data) < 16 {
		return nil, errCorrupted("fvar header too short")
	}
	major := binary.BigEndian.Uint16(data[0:2])
	minor := binary.BigEndian.Uint16(data[2:4])
	if major != 1 || minor != 0 {
		return nil, errUnsupportedVersion("fvar version must be 1.0")
	}

	axesArrayOffset := binary.BigEndian.Uint16(data[4:6])
	axisCount := int(binary.BigEndian.Uint16(data[8:10]))
	axisSize := int(binary.BigEndian.Uint16(data[10:12]))
	instanceCount := int(binary.BigEndian.Uint16(data[12:14]))
	instanceSize := int(binary.BigEndian.Uint16(data[14:16]))

	if axisSize < 20 {
		return nil, errCorrupted("fvar axis record too short")
	}

	axes := make([]VariationAxis, 0, axisCount)
	axesStart := int(axesArrayOffset)
	for i := 0; i < axisCount; i++ {
		off := axesStart + i*axisSize
		if off+20 > len(data) {
			return nil, errCorrupted("fvar axis record out of bounds")
		}
		rec := data[off : off+20]
		axes = append(axes, VariationAxis{
			Tag:     Tag(binary.BigEndian.Uint32(rec[0:4])),
			Min:     Fixed16_16(binary.BigEndian.Uint32(rec[4:8])).Float64(),
			Default: Fixed16_16(binary.BigEndian.Uint32(rec[8:12])).Float64(),
			Max:     Fixed16_16(binary.BigEndian.Uint32(rec[12:16])).Float64(),
			NameID:  binary.BigEndian.Uint16(rec[18:20]),
		})
	}

	instancesStart := axesStart + axisCount*axisSize
	minInstanceSize := 4 + 4*axisCount
	instances := make([]NamedInstance, 0, instanceCount)
	for i := 0; i < instanceCount; i++ {
		off := instancesStart + i*instanceSize
		if off+minInstanceSize > len(data) {
			return nil, errCorrupted("fvar instance record out of bounds")
		}
		rec := data[off:]
		subfamilyNameID := binary.BigEndian.Uint16(rec[0:2])

		coords := make([]float64, axisCount)
		for a := 0; a < axisCount; a++ {
			coords[a] = Fixed16_16(binary.BigEndian.Uint32(rec[4+a*4 : 8+a*4])).Float64()
		}

		inst := NamedInstance{SubfamilyNameID: subfamilyNameID, Coordinates: coords}
		if instanceSize > minInstanceSize && off+minInstanceSize+4 <= len(data) {
			inst.PostscriptNameID = binary.BigEndian.Uint16(rec[minInstanceSize : minInstanceSize+4])
			inst.HasPostscriptID = true
		}
		instances = append(instances, inst)
	}

	return &FvarTable{Axes: axes, Instances: instances}, nil
}
