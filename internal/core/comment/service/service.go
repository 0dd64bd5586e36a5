package commentapp

import (
	"context"

	"keepit/internal/config"
	commentEntity "keepit/internal/core/comment"
	"keepit/internal/core/richtext"
	commentPort "keepit/internal/ports/comment"
	postPort "keepit/internal/ports/post"

	"go.uber.org/zap"
)

// CommentService سرویس ثبت و بازیابی کامنت‌ها
type CommentService struct {
	CommentRepository commentPort.CommentRepository
	PostRepository    postPort.PostRepository
}

func NewCommentService(commentRepo commentPort.CommentRepository, postRepo postPort.PostRepository) *CommentService {
	return &CommentService{
		CommentRepository: commentRepo,
		PostRepository:    postRepo,
	}
}

// AddComment ثبت کامنت روی پست موجود، متصل به کاربر واردشده.
// پست ناموجود shared.ErrorNotFound برمی‌گرداند.
func (s *CommentService) AddComment(ctx context.Context, postID, userID uint, text string) (*commentPort.CommentDTO, error) {
	// پست باید وجود داشته باشد
	if _, err := s.PostRepository.FindByID(ctx, postID); err != nil {
		return nil, err
	}

	comment := &commentEntity.Comment{
		Text:   richtext.StripComment(text),
		UserID: userID,
		PostID: postID,
	}

	created, err := s.CommentRepository.Create(ctx, comment)
	if err != nil {
		return nil, err
	}

	config.Logger.Info("Comment added", zap.Uint("postID", postID), zap.Uint("userID", userID))

	return &commentPort.CommentDTO{
		ID:     created.ID,
		Text:   created.Text,
		UserID: created.UserID,
		PostID: created.PostID,
	}, nil
}

// GetComments کامنت‌های یک پست همراه با نام نویسنده
func (s *CommentService) GetComments(ctx context.Context, postID uint) ([]*commentPort.CommentDTO, error) {
	comments, err := s.CommentRepository.FindByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}

	dtos := make([]*commentPort.CommentDTO, 0, len(comments))
	for _, c := range comments {
		dtos = append(dtos, &commentPort.CommentDTO{
			ID:     c.ID,
			Text:   c.Text,
			UserID: c.UserID,
			PostID: c.PostID,
			Author: c.User.Name,
		})
	}
	return dtos, nil
}

// CountComments تعداد کامنت‌های یک پست
func (s *CommentService) CountComments(ctx context.Context, postID uint) (int64, error) {
	return s.CommentRepository.CountByPostID(ctx, postID)
}
