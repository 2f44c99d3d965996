package dto

import (
	"github.com/Musicista92/progettofinalecapstone-sub000/internal/domain"
)

func (l LocationRequest) ToDomain() domain.Location {
	return domain.Location{
		Venue:     l.Venue,
		Address:   l.Address,
		City:      l.City,
		Latitude:  l.Latitude,
		Longitude: l.Longitude,
	}
}

func (r UpdateEventRequest) ToInput() domain.UpdateEventInput {
	in := domain.UpdateEventInput{
		Title:           r.Title,
		Description:     r.Description,
		DateTime:        r.DateTime,
		EndDateTime:     r.EndDateTime,
		Price:           r.Price,
		MaxParticipants: r.MaxParticipants,
		Tags:            r.Tags,
	}
	if r.Location != nil {
		loc := r.Location.ToDomain()
		in.Location = &loc
	}
	if r.DanceStyle != nil {
		v := domain.DanceStyle(*r.DanceStyle)
		in.DanceStyle = &v
	}
	if r.SkillLevel != nil {
		v := domain.SkillLevel(*r.SkillLevel)
		in.SkillLevel = &v
	}
	if r.EventType != nil {
		v := domain.EventType(*r.EventType)
		in.EventType = &v
	}
	return in
}

func (q EventListQuery) ToFilter() domain.EventFilter {
	f := domain.EventFilter{
		City:       q.City,
		DanceStyle: domain.DanceStyle(q.DanceStyle),
		SkillLevel: domain.SkillLevel(q.SkillLevel),
		EventType:  domain.EventType(q.EventType),
		From:       q.From,
		To:         q.To,
		Query:      q.Query,
		Featured:   q.Featured,
		Page:       domain.Page{Number: q.Page, Limit: q.Limit}.Normalize(),
	}
	if q.Status != "" {
		s := domain.EventStatus(q.Status)
		f.Status = &s
	}
	return f
}

func (r UpdateProfileRequest) ToInput() domain.UpdateProfileInput {
	in := domain.UpdateProfileInput{
		Name:           r.Name,
		Bio:            r.Bio,
		City:           r.City,
		AvatarURL:      r.Avatar,
		TelegramChatID: r.TelegramChatID,
	}
	if p := r.Preferences; p != nil {
		if p.DanceStyles != nil {
			in.DanceStyles = make([]domain.DanceStyle, 0, len(p.DanceStyles))
			for _, s := range p.DanceStyles {
				in.DanceStyles = append(in.DanceStyles, domain.DanceStyle(s))
			}
		}
		if p.SkillLevel != nil {
			lvl := domain.SkillLevel(*p.SkillLevel)
			in.SkillLevel = &lvl
		}
		if n := p.Notifications; n != nil {
			in.EmailNotify = n.Email
			in.PushNotify = n.Push
		}
	}
	return in
}

func (r BroadcastRequest) ToInput() domain.BroadcastInput {
	in := domain.BroadcastInput{
		Title:     r.Title,
		Message:   r.Message,
		ActionURL: r.ActionURL,
		UserIDs:   r.UserIDs,
		SendEmail: r.SendEmail,
	}
	if r.Role != "" {
		role := domain.Role(r.Role)
		in.Role = &role
	}
	return in
}
