package tagstore

import (
	"fmt"
	"strings"

	"github.com/go-flac/flacvorbis"
	"github.com/go-flac/go-flac"
)

// flacStore хранит теги FLAC файла в блоке Vorbis comment
type flacStore struct {
	path   string
	file   *flac.File
	cmtIdx int
	cmt    *flacvorbis.MetaDataBlockVorbisComment
}

func openFLAC(path string) (Store, error) {
	f, err := flac.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка разбора FLAC файла: %w", err)
	}

	s := &flacStore{path: path, file: f, cmtIdx: -1}
	for idx, block := range f.Meta {
		if block.Type == flac.VorbisComment {
			cmt, err := flacvorbis.ParseFromMetaDataBlock(*block)
			if err != nil {
				return nil, fmt.Errorf("ошибка разбора Vorbis comment: %w", err)
			}
			s.cmt = cmt
			s.cmtIdx = idx
			break
		}
	}
	if s.cmt == nil {
		s.cmt = flacvorbis.New()
	}
	return s, nil
}

func (s *flacStore) Get(field Field) string {
	return vorbisGet(s.cmt.Comments, field)
}

func (s *flacStore) Set(field Field, value string) {
	s.cmt.Comments = vorbisSet(s.cmt.Comments, field, value)
}

func (s *flacStore) Save() error {
	block := s.cmt.Marshal()
	if s.cmtIdx < 0 {
		s.file.Meta = append(s.file.Meta, &block)
		s.cmtIdx = len(s.file.Meta) - 1
	} else {
		s.file.Meta[s.cmtIdx] = &block
	}
	if err := s.file.Save(s.path); err != nil {
		return fmt.Errorf("ошибка сохранения FLAC файла: %w", err)
	}
	return nil
}

func (s *flacStore) Close() error {
	return nil
}

// vorbisKey возвращает имя поля в Vorbis comment
func vorbisKey(field Field) string {
	return strings.ToUpper(string(field))
}

// vorbisGet возвращает первое значение поля из списка "KEY=value"
func vorbisGet(comments []string, field Field) string {
	key := vorbisKey(field)
	for _, c := range comments {
		parts := strings.SplitN(c, "=", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], key) {
			return strings.TrimSpace(parts[1])
		}
	}
	return ""
}

// vorbisSet заменяет все значения поля одним
func vorbisSet(comments []string, field Field, value string) []string {
	key := vorbisKey(field)
	out := make([]string, 0, len(comments)+1)
	for _, c := range comments {
		parts := strings.SplitN(c, "=", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], key) {
			continue
		}
		out = append(out, c)
	}
	return append(out, key+"="+value)
}
