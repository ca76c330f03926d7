package store

import (
	"bytes"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ishidiag/fishbone/pkg/bone"
	fberrors "github.com/ishidiag/fishbone/pkg/errors"
	"github.com/ishidiag/fishbone/pkg/fishio"
)

const diagramCollection = "diagrams"

// MongoStore keeps diagrams in a MongoDB collection, one document per
// name. The diagram itself is stored as its portable JSON document, so
// mongo and file stores stay interchangeable.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

type mongoDiagram struct {
	Name      string    `bson:"_id"`
	Head      string    `bson:"head"`
	Bones     int       `bson:"bones"`
	Data      []byte    `bson:"data"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// NewMongoStore connects to MongoDB and verifies the connection.
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fberrors.Wrap(fberrors.ErrCodeStoreUnavailable, err, "connect to mongo")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fberrors.Wrap(fberrors.ErrCodeStoreUnavailable, err, "ping mongo")
	}
	return &MongoStore{
		client: client,
		coll:   client.Database(database).Collection(diagramCollection),
	}, nil
}

func (s *MongoStore) Save(ctx context.Context, name string, d *bone.Diagram) error {
	if err := fberrors.ValidateDiagramName(name); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := fishio.Write(d, &buf); err != nil {
		return err
	}
	doc := mongoDiagram{
		Name:      name,
		Head:      d.Head,
		Bones:     d.BoneCount(),
		Data:      buf.Bytes(),
		UpdatedAt: time.Now().UTC(),
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := s.coll.ReplaceOne(ctx, bson.M{"_id": name}, doc, opts); err != nil {
		return fberrors.Wrap(fberrors.ErrCodeStoreUnavailable, err, "save diagram %q", name)
	}
	return nil
}

func (s *MongoStore) Load(ctx context.Context, name string) (*bone.Diagram, error) {
	if err := fberrors.ValidateDiagramName(name); err != nil {
		return nil, err
	}

	var doc mongoDiagram
	err := s.coll.FindOne(ctx, bson.M{"_id": name}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fberrors.New(fberrors.ErrCodeDiagramNotFound, "no diagram named %q", name)
	}
	if err != nil {
		return nil, fberrors.Wrap(fberrors.ErrCodeStoreUnavailable, err, "load diagram %q", name)
	}
	return fishio.Read(bytes.NewReader(doc.Data))
}

func (s *MongoStore) List(ctx context.Context) ([]Info, error) {
	opts := options.Find().
		SetProjection(bson.M{"data": 0}).
		SetSort(bson.M{"_id": 1})
	cur, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fberrors.Wrap(fberrors.ErrCodeStoreUnavailable, err, "list diagrams")
	}
	defer cur.Close(ctx)

	var infos []Info
	for cur.Next(ctx) {
		var doc mongoDiagram
		if err := cur.Decode(&doc); err != nil {
			return nil, fberrors.Wrap(fberrors.ErrCodeStoreUnavailable, err, "decode diagram")
		}
		infos = append(infos, Info{
			Name:      doc.Name,
			Head:      doc.Head,
			Bones:     doc.Bones,
			UpdatedAt: doc.UpdatedAt,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fberrors.Wrap(fberrors.ErrCodeStoreUnavailable, err, "list diagrams")
	}
	return infos, nil
}

func (s *MongoStore) Delete(ctx context.Context, name string) error {
	if err := fberrors.ValidateDiagramName(name); err != nil {
		return err
	}
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": name})
	if err != nil {
		return fberrors.Wrap(fberrors.ErrCodeStoreUnavailable, err, "delete diagram %q", name)
	}
	if res.DeletedCount == 0 {
		return fberrors.New(fberrors.ErrCodeDiagramNotFound, "no diagram named %q", name)
	}
	return nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

var _ Store = (*MongoStore)(nil)
