package mongo

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shelfmates/shelfmates/shared/domain"
)

func (s *Storage) CreateBook(b domain.Book) error {
	ctx, cancel := s.opCtx()
	defer cancel()

	if b.Sections == nil {
		b.Sections = []domain.Section{}
	}
	_, err := s.books().InsertOne(ctx, b)
	return err
}

func (s *Storage) Book(id domain.BookId) (domain.Book, bool, error) {
	ctx, cancel := s.opCtx()
	defer cancel()

	var b domain.Book
	err := s.books().FindOne(ctx, bson.M{"_id": id}).Decode(&b)
	if err == mongo.ErrNoDocuments {
		return domain.Book{}, false, nil
	}
	if err != nil {
		return domain.Book{}, false, err
	}
	return b, true, nil
}

func (s *Storage) CreateProgress(p domain.Progress) error {
	ctx, cancel := s.opCtx()
	defer cancel()

	_, err := s.progress().InsertOne(ctx, p)
	return err
}

func (s *Storage) Progress(reader domain.UserId, book domain.BookId) (domain.Progress, bool, error) {
	ctx, cancel := s.opCtx()
	defer cancel()

	var p domain.Progress
	err := s.progress().FindOne(ctx, bson.M{"reader": reader, "book": book}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return domain.Progress{}, false, nil
	}
	if err != nil {
		return domain.Progress{}, false, err
	}
	return p, true, nil
}

func (s *Storage) UpdateProgress(p domain.Progress) error {
	ctx, cancel := s.opCtx()
	defer cancel()

	_, err := s.progress().ReplaceOne(ctx, bson.M{"_id": p.Id}, p)
	return err
}

func (s *Storage) ProgressByReader(reader domain.UserId) ([]domain.Progress, error) {
	ctx, cancel := s.opCtx()
	defer cancel()

	sorted := options.Find().SetSort(bson.D{{Key: "started_at", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := s.progress().Find(ctx, bson.M{"reader": reader}, sorted)
	if err != nil {
		return nil, err
	}
	var out []domain.Progress
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
