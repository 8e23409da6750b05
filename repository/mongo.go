package repository

import (
	"context"
	"errors"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"rooms-api/models"
)

// Collection names and field types follow the documents written by
// earlier deployments of this service.
const (
	roomTypesCollection = "roomtypes"
	roomsCollection     = "rooms"
)

// MongoStore is the anchor struct for the MongoDB repository implementations.
type MongoStore struct {
	db *mongo.Database
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

func (s *MongoStore) RoomTypes() RoomTypeRepository {
	return mongoRoomTypes{coll: s.db.Collection(roomTypesCollection)}
}

func (s *MongoStore) Rooms() RoomRepository {
	return mongoRooms{coll: s.db.Collection(roomsCollection)}
}

type roomTypeDocument struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Name *string            `bson:"name,omitempty"`
}

// roomDocument.RoomType holds a primitive.ObjectID, a string or nil.
type roomDocument struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Name     *string            `bson:"name,omitempty"`
	RoomType interface{}        `bson:"roomType,omitempty"`
	Price    *float64           `bson:"price,omitempty"`
}

// roomTypeValue stores references that look like ObjectIds as ObjectIds,
// the type existing documents use, and anything else as a plain string.
func roomTypeValue(ref *string) interface{} {
	if ref == nil {
		return nil
	}
	if oid, err := primitive.ObjectIDFromHex(*ref); err == nil {
		return oid
	}
	return *ref
}

func roomTypeString(v interface{}) *string {
	var s string
	switch t := v.(type) {
	case primitive.ObjectID:
		s = t.Hex()
	case string:
		s = t
	default:
		return nil
	}
	return &s
}

func (d roomDocument) toModel() models.Room {
	return models.Room{
		ID:       d.ID.Hex(),
		Name:     d.Name,
		RoomType: roomTypeString(d.RoomType),
		Price:    d.Price,
	}
}

type mongoRoomTypes struct {
	coll *mongo.Collection
}

func (r mongoRoomTypes) Create(ctx context.Context, rt *models.RoomType) error {
	doc := roomTypeDocument{ID: primitive.NewObjectID(), Name: rt.Name}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		log.Printf("❌ insert room type: %v", err)
		return err
	}
	rt.ID = doc.ID.Hex()
	return nil
}

func (r mongoRoomTypes) List(ctx context.Context) ([]models.RoomType, error) {
	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	var docs []roomTypeDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	types := make([]models.RoomType, 0, len(docs))
	for _, d := range docs {
		types = append(types, models.RoomType{ID: d.ID.Hex(), Name: d.Name})
	}
	return types, nil
}

type mongoRooms struct {
	coll *mongo.Collection
}

func (r mongoRooms) Create(ctx context.Context, room *models.Room) error {
	doc := roomDocument{
		ID:       primitive.NewObjectID(),
		Name:     room.Name,
		RoomType: roomTypeValue(room.RoomType),
		Price:    room.Price,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		log.Printf("❌ insert room: %v", err)
		return err
	}
	room.ID = doc.ID.Hex()
	return nil
}

// roomFilterDocument translates a RoomFilter into a query document.
func roomFilterDocument(filter RoomFilter) bson.M {
	doc := bson.M{}
	if filter.Search != nil {
		doc["name"] = bson.M{"$regex": *filter.Search, "$options": "i"}
	}
	if filter.RoomType != nil {
		doc["roomType"] = roomTypeValue(filter.RoomType)
	}
	if filter.MinPrice != nil || filter.MaxPrice != nil {
		price := bson.M{}
		if filter.MinPrice != nil {
			price["$gte"] = *filter.MinPrice
		}
		if filter.MaxPrice != nil {
			price["$lte"] = *filter.MaxPrice
		}
		doc["price"] = price
	}
	return doc
}

func (r mongoRooms) List(ctx context.Context, filter RoomFilter) ([]models.Room, error) {
	cur, err := r.coll.Find(ctx, roomFilterDocument(filter))
	if err != nil {
		return nil, err
	}
	var docs []roomDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	rooms := make([]models.Room, 0, len(docs))
	for _, d := range docs {
		rooms = append(rooms, d.toModel())
	}
	return rooms, nil
}

// objectID parses a path id. A malformed id is reported as an operation
// failure rather than as a missing room.
func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("cast to ObjectId failed for value %q: %w", id, err)
	}
	return oid, nil
}

func mongoNotFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

func (r mongoRooms) Get(ctx context.Context, id string) (*models.Room, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var doc roomDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, mongoNotFound(err)
	}
	room := doc.toModel()
	return &room, nil
}

func (r mongoRooms) Replace(ctx context.Context, id string, fields models.RoomFields) (*models.Room, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	// nil values encode as null, so omitted fields are cleared.
	update := bson.M{"$set": bson.M{
		"name":     fields.Name,
		"roomType": roomTypeValue(fields.RoomType),
		"price":    fields.Price,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc roomDocument
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc); err != nil {
		return nil, mongoNotFound(err)
	}
	room := doc.toModel()
	return &room, nil
}

func (r mongoRooms) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	return mongoNotFound(r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Err())
}
