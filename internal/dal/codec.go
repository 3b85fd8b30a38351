package dal

import (
	"fmt"
	"reflect"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
	"go.mongodb.org/mongo-driver/bson/bsonrw"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// UUIDs are stored as BSON binary subtype 4, the cross-driver standard
// representation, so documents written by other stacks stay readable.

var tUUID = reflect.TypeOf(uuid.UUID{})

const (
	binarySubtypeUUID       = byte(0x04)
	binarySubtypeUUIDLegacy = byte(0x03)
)

func uuidEncodeValue(_ bsoncodec.EncodeContext, vw bsonrw.ValueWriter, val reflect.Value) error {
	if !val.IsValid() || val.Type() != tUUID {
		return bsoncodec.ValueEncoderError{
			Name:     "uuidEncodeValue",
			Types:    []reflect.Type{tUUID},
			Received: val,
		}
	}
	id := val.Interface().(uuid.UUID)
	return vw.WriteBinaryWithSubtype(id[:], binarySubtypeUUID)
}

func uuidDecodeValue(_ bsoncodec.DecodeContext, vr bsonrw.ValueReader, val reflect.Value) error {
	if !val.CanSet() || val.Type() != tUUID {
		return bsoncodec.ValueDecoderError{
			Name:     "uuidDecodeValue",
			Types:    []reflect.Type{tUUID},
			Received: val,
		}
	}

	switch vrType := vr.Type(); vrType {
	case bsontype.Binary:
		data, subtype, err := vr.ReadBinary()
		if err != nil {
			return err
		}
		if subtype != binarySubtypeUUID && subtype != binarySubtypeUUIDLegacy {
			return fmt.Errorf("cannot decode binary subtype 0x%02x as a UUID", subtype)
		}
		id, err := uuid.FromBytes(data)
		if err != nil {
			return err
		}
		val.Set(reflect.ValueOf(id))
		return nil
	case bsontype.Null:
		if err := vr.ReadNull(); err != nil {
			return err
		}
		val.Set(reflect.ValueOf(uuid.Nil))
		return nil
	default:
		return fmt.Errorf("cannot decode %v as a UUID", vrType)
	}
}

// Registry returns the BSON codec registry with UUID support registered.
func Registry() *bsoncodec.Registry {
	reg := bson.NewRegistry()
	reg.RegisterTypeEncoder(tUUID, bsoncodec.ValueEncoderFunc(uuidEncodeValue))
	reg.RegisterTypeDecoder(tUUID, bsoncodec.ValueDecoderFunc(uuidDecodeValue))
	return reg
}
