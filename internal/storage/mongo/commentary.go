package mongo

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shelfmates/shelfmates/shared/domain"
)

var commentSort = options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
var reactionSort = options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})

func (s *Storage) CreateThread(t domain.Thread) error {
	ctx, cancel := s.opCtx()
	defer cancel()

	if t.TopLevel == nil {
		t.TopLevel = []domain.CommentId{}
	}
	_, err := s.threads().InsertOne(ctx, t)
	return err
}

func (s *Storage) Thread(id domain.ThreadId) (domain.Thread, bool, error) {
	ctx, cancel := s.opCtx()
	defer cancel()

	var t domain.Thread
	err := s.threads().FindOne(ctx, bson.M{"_id": id}).Decode(&t)
	if err == mongo.ErrNoDocuments {
		return domain.Thread{}, false, nil
	}
	if err != nil {
		return domain.Thread{}, false, err
	}
	return t, true, nil
}

func (s *Storage) ThreadByScope(book domain.BookId, section domain.SectionId) (domain.Thread, bool, error) {
	ctx, cancel := s.opCtx()
	defer cancel()

	var t domain.Thread
	err := s.threads().FindOne(ctx, bson.M{"book": book, "section": section}).Decode(&t)
	if err == mongo.ErrNoDocuments {
		return domain.Thread{}, false, nil
	}
	if err != nil {
		return domain.Thread{}, false, err
	}
	return t, true, nil
}

func (s *Storage) AppendTopLevelComment(thread domain.ThreadId, comment domain.CommentId) error {
	ctx, cancel := s.opCtx()
	defer cancel()

	_, err := s.threads().UpdateByID(ctx, thread, bson.M{"$push": bson.M{"top_level": comment}})
	return err
}

func (s *Storage) RemoveTopLevelComment(thread domain.ThreadId, comment domain.CommentId) error {
	ctx, cancel := s.opCtx()
	defer cancel()

	_, err := s.threads().UpdateByID(ctx, thread, bson.M{"$pull": bson.M{"top_level": comment}})
	return err
}

func (s *Storage) CreateComment(c domain.Comment) error {
	ctx, cancel := s.opCtx()
	defer cancel()

	if c.Reactions == nil {
		c.Reactions = []domain.ReactionId{}
	}
	_, err := s.comments().InsertOne(ctx, c)
	return err
}

func (s *Storage) Comment(id domain.CommentId) (domain.Comment, bool, error) {
	ctx, cancel := s.opCtx()
	defer cancel()

	var c domain.Comment
	err := s.comments().FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return domain.Comment{}, false, nil
	}
	if err != nil {
		return domain.Comment{}, false, err
	}
	return c, true, nil
}

func (s *Storage) CommentsByThread(thread domain.ThreadId) ([]domain.Comment, error) {
	ctx, cancel := s.opCtx()
	defer cancel()

	cursor, err := s.comments().Find(ctx, bson.M{"thread": thread}, commentSort)
	if err != nil {
		return nil, err
	}
	var out []domain.Comment
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Storage) CommentsByParents(parents []domain.CommentId) ([]domain.Comment, error) {
	ctx, cancel := s.opCtx()
	defer cancel()

	cursor, err := s.comments().Find(ctx, bson.M{"parent": bson.M{"$in": parents}}, commentSort)
	if err != nil {
		return nil, err
	}
	var out []domain.Comment
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Storage) DeleteComments(ids []domain.CommentId) error {
	ctx, cancel := s.opCtx()
	defer cancel()

	_, err := s.comments().DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	return err
}

func (s *Storage) CreateReaction(r domain.Reaction) error {
	ctx, cancel := s.opCtx()
	defer cancel()

	_, err := s.reactions().InsertOne(ctx, r)
	return err
}

func (s *Storage) AppendReaction(comment domain.CommentId, reaction domain.ReactionId) error {
	ctx, cancel := s.opCtx()
	defer cancel()

	_, err := s.comments().UpdateByID(ctx, comment, bson.M{"$push": bson.M{"reactions": reaction}})
	return err
}

func (s *Storage) ReactionExists(reactor domain.UserId, comment domain.CommentId, kind domain.ReactionKind) (bool, error) {
	ctx, cancel := s.opCtx()
	defer cancel()

	n, err := s.reactions().CountDocuments(ctx, bson.M{"reactor": reactor, "comment": comment, "kind": kind})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *Storage) ReactionsByComment(comment domain.CommentId) ([]domain.Reaction, error) {
	ctx, cancel := s.opCtx()
	defer cancel()

	cursor, err := s.reactions().Find(ctx, bson.M{"comment": comment}, reactionSort)
	if err != nil {
		return nil, err
	}
	var out []domain.Reaction
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Storage) DeleteReactionsByComments(comments []domain.CommentId) error {
	ctx, cancel := s.opCtx()
	defer cancel()

	_, err := s.reactions().DeleteMany(ctx, bson.M{"comment": bson.M{"$in": comments}})
	return err
}
