package postapp

import (
	"context"
	"time"

	"keepit/internal/config"
	postEntity "keepit/internal/core/post"
	"keepit/internal/core/richtext"
	postPort "keepit/internal/ports/post"

	"go.uber.org/zap"
)

// PostService سرویس مدیریت پست‌ها
type PostService struct {
	PostRepository postPort.PostRepository
	now            func() time.Time
}

func NewPostService(postRepo postPort.PostRepository) *PostService {
	return &PostService{
		PostRepository: postRepo,
		now:            time.Now,
	}
}

// CreatePost ایجاد پست جدید با نویسنده و تاریخ امروز
func (s *PostService) CreatePost(ctx context.Context, title, subtitle, body, imgURL string, authorID uint) (*postPort.PostDTO, error) {
	post := &postEntity.Post{
		Title:    title,
		Subtitle: subtitle,
		Date:     s.now().Format(postEntity.DateLayout),
		Body:     richtext.StripEmptyParagraph(body),
		ImgURL:   imgURL,
		AuthorID: authorID,
	}

	// بررسی تکراری بودن عنوان داخل تراکنش repository انجام می‌شود
	created, err := s.PostRepository.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	config.Logger.Info("✅ Post created", zap.Uint("postID", created.ID), zap.String("title", created.Title))

	return toDTO(created), nil
}

// UpdatePost ویرایش پست؛ تاریخ انتشار دوباره ثبت نمی‌شود
func (s *PostService) UpdatePost(ctx context.Context, id uint, title, subtitle, body, imgURL string) (*postPort.PostDTO, error) {
	existing, err := s.PostRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Title = title
	existing.Subtitle = subtitle
	existing.Body = richtext.StripEmptyParagraph(body)
	existing.ImgURL = imgURL

	updated, err := s.PostRepository.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	config.Logger.Info("Post updated", zap.Uint("postID", updated.ID))

	return toDTO(updated), nil
}

// GetPost بازیابی یک پست با شناسه
func (s *PostService) GetPost(ctx context.Context, id uint) (*postPort.PostDTO, error) {
	post, err := s.PostRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDTO(post), nil
}

// GetAllPosts همه پست‌ها به ترتیب شناسه
func (s *PostService) GetAllPosts(ctx context.Context) ([]*postPort.PostDTO, error) {
	posts, err := s.PostRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]*postPort.PostDTO, 0, len(posts))
	for _, p := range posts {
		dtos = append(dtos, toDTO(p))
	}
	return dtos, nil
}

// DeletePost حذف پست با کامنت‌هایش؛ پست ناموجود خطا نیست
func (s *PostService) DeletePost(ctx context.Context, id uint) error {
	if err := s.PostRepository.Delete(ctx, id); err != nil {
		return err
	}
	config.Logger.Info("Post deleted", zap.Uint("postID", id))
	return nil
}

func toDTO(p *postEntity.Post) *postPort.PostDTO {
	return &postPort.PostDTO{
		ID:       p.ID,
		Title:    p.Title,
		Subtitle: p.Subtitle,
		Date:     p.Date,
		Body:     p.Body,
		ImgURL:   p.ImgURL,
		AuthorID: p.AuthorID,
		Author:   p.User.Name,
	}
}
