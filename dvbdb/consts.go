package dvbdb

// Fixed capacities, mirroring dvbsubdecoder's Config.hpp. The database
// never grows past these limits after construction (spec.md's
// Non-goals: no dynamic memory growth).
const (
	MaxSupportedRegions = 16
	MaxSupportedCluts   = 16
	MaxSupportedObjects = 256
)

// Region depth codes, as signaled in a Region Composition Segment.
type RegionDepth uint8

const (
	RegionDepth2Bit RegionDepth = 0x01
	RegionDepth4Bit RegionDepth = 0x02
	RegionDepth8Bit RegionDepth = 0x03
)

// Region object types, as signaled in a Region Composition Segment's
// object list.
type ObjectType uint8

const (
	ObjectTypeBasicBitmap    ObjectType = 0
	ObjectTypeBasicCharacter ObjectType = 1
	ObjectTypeCompositeStr   ObjectType = 2
)
