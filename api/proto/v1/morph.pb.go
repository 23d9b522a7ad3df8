package pb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)

	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Status int32

const (
	Status_OK    Status = 0
	Status_DROP  Status = 1
	Status_ERROR Status = 2
)

var (
	Status_name = map[int32]string{
		0: "OK",
		1: "DROP",
		2: "ERROR",
	}
	Status_value = map[string]int32{
		"OK":    0,
		"DROP":  1,
		"ERROR": 2,
	}
)

func (x Status) Enum() *Status {
	p := new(Status)
	*p = x
	return p
}

func (x Status) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (Status) Descriptor() protoreflect.EnumDescriptor {
	return file_v1_morph_proto_enumTypes[0].Descriptor()
}

func (Status) Type() protoreflect.EnumType {
	return &file_v1_morph_proto_enumTypes[0]
}

func (x Status) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

func (Status) EnumDescriptor() ([]byte, []int) {
	return file_v1_morph_proto_rawDescGZIP(), []int{0}
}

type KafkaOffset struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Topic         string                 `protobuf:"bytes,1,opt,name=topic,proto3" json:"topic,omitempty"`
	Partition     int32                  `protobuf:"varint,2,opt,name=partition,proto3" json:"partition,omitempty"`
	Offset        int64                  `protobuf:"varint,3,opt,name=offset,proto3" json:"offset,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *KafkaOffset) Reset() {
	*x = KafkaOffset{}
	mi := &file_v1_morph_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *KafkaOffset) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*KafkaOffset) ProtoMessage() {}

func (x *KafkaOffset) ProtoReflect() protoreflect.Message {
	mi := &file_v1_morph_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (*KafkaOffset) Descriptor() ([]byte, []int) {
	return file_v1_morph_proto_rawDescGZIP(), []int{0}
}

func (x *KafkaOffset) GetTopic() string {
	if x != nil {
		return x.Topic
	}
	return ""
}

func (x *KafkaOffset) GetPartition() int32 {
	if x != nil {
		return x.Partition
	}
	return 0
}

func (x *KafkaOffset) GetOffset() int64 {
	if x != nil {
		return x.Offset
	}
	return 0
}

type CheckpointToken struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Kafka         *KafkaOffset           `protobuf:"bytes,1,opt,name=kafka,proto3" json:"kafka,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CheckpointToken) Reset() {
	*x = CheckpointToken{}
	mi := &file_v1_morph_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CheckpointToken) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CheckpointToken) ProtoMessage() {}

func (x *CheckpointToken) ProtoReflect() protoreflect.Message {
	mi := &file_v1_morph_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (*CheckpointToken) Descriptor() ([]byte, []int) {
	return file_v1_morph_proto_rawDescGZIP(), []int{1}
}

func (x *CheckpointToken) GetKafka() *KafkaOffset {
	if x != nil {
		return x.Kafka
	}
	return nil
}

type Frame struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Key           []byte                 `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	Value         []byte                 `protobuf:"bytes,2,opt,name=value,proto3" json:"value,omitempty"`
	ContentType   string                 `protobuf:"bytes,3,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	Checkpoint    *CheckpointToken       `protobuf:"bytes,4,opt,name=checkpoint,proto3" json:"checkpoint,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Frame) Reset() {
	*x = Frame{}
	mi := &file_v1_morph_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Frame) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Frame) ProtoMessage() {}

func (x *Frame) ProtoReflect() protoreflect.Message {
	mi := &file_v1_morph_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (*Frame) Descriptor() ([]byte, []int) {
	return file_v1_morph_proto_rawDescGZIP(), []int{2}
}

func (x *Frame) GetKey() []byte {
	if x != nil {
		return x.Key
	}
	return nil
}

func (x *Frame) GetValue() []byte {
	if x != nil {
		return x.Value
	}
	return nil
}

func (x *Frame) GetContentType() string {
	if x != nil {
		return x.ContentType
	}
	return ""
}

func (x *Frame) GetCheckpoint() *CheckpointToken {
	if x != nil {
		return x.Checkpoint
	}
	return nil
}

type SourceAck struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Checkpoint    *CheckpointToken       `protobuf:"bytes,1,opt,name=checkpoint,proto3" json:"checkpoint,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SourceAck) Reset() {
	*x = SourceAck{}
	mi := &file_v1_morph_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SourceAck) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SourceAck) ProtoMessage() {}

func (x *SourceAck) ProtoReflect() protoreflect.Message {
	mi := &file_v1_morph_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (*SourceAck) Descriptor() ([]byte, []int) {
	return file_v1_morph_proto_rawDescGZIP(), []int{3}
}

func (x *SourceAck) GetCheckpoint() *CheckpointToken {
	if x != nil {
		return x.Checkpoint
	}
	return nil
}

type Event struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Value         []byte                 `protobuf:"bytes,2,opt,name=value,proto3" json:"value,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Event) Reset() {
	*x = Event{}
	mi := &file_v1_morph_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Event) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Event) ProtoMessage() {}

func (x *Event) ProtoReflect() protoreflect.Message {
	mi := &file_v1_morph_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (*Event) Descriptor() ([]byte, []int) {
	return file_v1_morph_proto_rawDescGZIP(), []int{4}
}

func (x *Event) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Event) GetValue() []byte {
	if x != nil {
		return x.Value
	}
	return nil
}

type TransformRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Payload       []byte                 `protobuf:"bytes,1,opt,name=payload,proto3" json:"payload,omitempty"`
	ContentType   string                 `protobuf:"bytes,2,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	CustomCode    string                 `protobuf:"bytes,3,opt,name=custom_code,json=customCode,proto3" json:"custom_code,omitempty"`
	SourceOffset  string                 `protobuf:"bytes,4,opt,name=source_offset,json=sourceOffset,proto3" json:"source_offset,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TransformRequest) Reset() {
	*x = TransformRequest{}
	mi := &file_v1_morph_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TransformRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TransformRequest) ProtoMessage() {}

func (x *TransformRequest) ProtoReflect() protoreflect.Message {
	mi := &file_v1_morph_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (*TransformRequest) Descriptor() ([]byte, []int) {
	return file_v1_morph_proto_rawDescGZIP(), []int{5}
}

func (x *TransformRequest) GetPayload() []byte {
	if x != nil {
		return x.Payload
	}
	return nil
}

func (x *TransformRequest) GetContentType() string {
	if x != nil {
		return x.ContentType
	}
	return ""
}

func (x *TransformRequest) GetCustomCode() string {
	if x != nil {
		return x.CustomCode
	}
	return ""
}

func (x *TransformRequest) GetSourceOffset() string {
	if x != nil {
		return x.SourceOffset
	}
	return ""
}

type TransformResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        Status                 `protobuf:"varint,1,opt,name=status,proto3,enum=morph.v1.Status" json:"status,omitempty"`
	Events        []*Event               `protobuf:"bytes,2,rep,name=events,proto3" json:"events,omitempty"`
	Output        string                 `protobuf:"bytes,3,opt,name=output,proto3" json:"output,omitempty"`
	Error         string                 `protobuf:"bytes,4,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TransformResponse) Reset() {
	*x = TransformResponse{}
	mi := &file_v1_morph_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TransformResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TransformResponse) ProtoMessage() {}

func (x *TransformResponse) ProtoReflect() protoreflect.Message {
	mi := &file_v1_morph_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (*TransformResponse) Descriptor() ([]byte, []int) {
	return file_v1_morph_proto_rawDescGZIP(), []int{6}
}

func (x *TransformResponse) GetStatus() Status {
	if x != nil {
		return x.Status
	}
	return Status_OK
}

func (x *TransformResponse) GetEvents() []*Event {
	if x != nil {
		return x.Events
	}
	return nil
}

func (x *TransformResponse) GetOutput() string {
	if x != nil {
		return x.Output
	}
	return ""
}

func (x *TransformResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type MetadataRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MetadataRequest) Reset() {
	*x = MetadataRequest{}
	mi := &file_v1_morph_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MetadataRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MetadataRequest) ProtoMessage() {}

func (x *MetadataRequest) ProtoReflect() protoreflect.Message {
	mi := &file_v1_morph_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (*MetadataRequest) Descriptor() ([]byte, []int) {
	return file_v1_morph_proto_rawDescGZIP(), []int{7}
}

type MetadataResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Version       string                 `protobuf:"bytes,2,opt,name=version,proto3" json:"version,omitempty"`
	Engine        string                 `protobuf:"bytes,3,opt,name=engine,proto3" json:"engine,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MetadataResponse) Reset() {
	*x = MetadataResponse{}
	mi := &file_v1_morph_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MetadataResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MetadataResponse) ProtoMessage() {}

func (x *MetadataResponse) ProtoReflect() protoreflect.Message {
	mi := &file_v1_morph_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (*MetadataResponse) Descriptor() ([]byte, []int) {
	return file_v1_morph_proto_rawDescGZIP(), []int{8}
}

func (x *MetadataResponse) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *MetadataResponse) GetVersion() string {
	if x != nil {
		return x.Version
	}
	return ""
}

func (x *MetadataResponse) GetEngine() string {
	if x != nil {
		return x.Engine
	}
	return ""
}

type HealthRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *HealthRequest) Reset() {
	*x = HealthRequest{}
	mi := &file_v1_morph_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *HealthRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*HealthRequest) ProtoMessage() {}

func (x *HealthRequest) ProtoReflect() protoreflect.Message {
	mi := &file_v1_morph_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (*HealthRequest) Descriptor() ([]byte, []int) {
	return file_v1_morph_proto_rawDescGZIP(), []int{9}
}

type HealthResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ok            bool                   `protobuf:"varint,1,opt,name=ok,proto3" json:"ok,omitempty"`
	Details       string                 `protobuf:"bytes,2,opt,name=details,proto3" json:"details,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *HealthResponse) Reset() {
	*x = HealthResponse{}
	mi := &file_v1_morph_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *HealthResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*HealthResponse) ProtoMessage() {}

func (x *HealthResponse) ProtoReflect() protoreflect.Message {
	mi := &file_v1_morph_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (*HealthResponse) Descriptor() ([]byte, []int) {
	return file_v1_morph_proto_rawDescGZIP(), []int{10}
}

func (x *HealthResponse) GetOk() bool {
	if x != nil {
		return x.Ok
	}
	return false
}

func (x *HealthResponse) GetDetails() string {
	if x != nil {
		return x.Details
	}
	return ""
}

var File_v1_morph_proto protoreflect.FileDescriptor

const file_v1_morph_proto_rawDesc = "" +
	"\n" +
	"\x0ev1/morph.proto\x12\bmorph.v1\"Y\n" +
	"\vKafkaOffset\x12\x14\n" +
	"\x05topic\x18\x01 \x01(\tR\x05topic\x12\x1c\n" +
	"\tpartition\x18\x02 \x01(\x05R\tpartition\x12\x16\n" +
	"\x06offset\x18\x03 \x01(\x03R\x06offset\">\n" +
	"\x0fCheckpointToken\x12+\n" +
	"\x05kafka\x18\x01 \x01(\v2\x15.morph.v1.KafkaOffsetR\x05kafka\"\x8d\x01\n" +
	"\x05Frame\x12\x10\n" +
	"\x03key\x18\x01 \x01(\fR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\fR\x05value\x12!\n" +
	"\fcontent_type\x18\x03 \x01(\tR\vcontentType\x129\n" +
	"\n" +
	"checkpoint\x18\x04 \x01(\v2\x19.morph.v1.CheckpointTokenR\n" +
	"checkpoint\"F\n" +
	"\tSourceAck\x129\n" +
	"\n" +
	"checkpoint\x18\x01 \x01(\v2\x19.morph.v1.CheckpointTokenR\n" +
	"checkpoint\"-\n" +
	"\x05Event\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x14\n" +
	"\x05value\x18\x02 \x01(\fR\x05value\"\x95\x01\n" +
	"\x10TransformRequest\x12\x18\n" +
	"\apayload\x18\x01 \x01(\fR\apayload\x12!\n" +
	"\fcontent_type\x18\x02 \x01(\tR\vcontentType\x12\x1f\n" +
	"\vcustom_code\x18\x03 \x01(\tR\n" +
	"customCode\x12#\n" +
	"\rsource_offset\x18\x04 \x01(\tR\fsourceOffset\"\x94\x01\n" +
	"\x11TransformResponse\x12(\n" +
	"\x06status\x18\x01 \x01(\x0e2\x10.morph.v1.StatusR\x06status\x12'\n" +
	"\x06events\x18\x02 \x03(\v2\x0f.morph.v1.EventR\x06events\x12\x16\n" +
	"\x06output\x18\x03 \x01(\tR\x06output\x12\x14\n" +
	"\x05error\x18\x04 \x01(\tR\x05error\"\x11\n" +
	"\x0fMetadataRequest\"X\n" +
	"\x10MetadataResponse\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x18\n" +
	"\aversion\x18\x02 \x01(\tR\aversion\x12\x16\n" +
	"\x06engine\x18\x03 \x01(\tR\x06engine\"\x0f\n" +
	"\rHealthRequest\":\n" +
	"\x0eHealthResponse\x12\x0e\n" +
	"\x02ok\x18\x01 \x01(\bR\x02ok\x12\x18\n" +
	"\adetails\x18\x02 \x01(\tR\adetails*%\n" +
	"\x06Status\x12\x06\n" +
	"\x02OK\x10\x00\x12\b\n" +
	"\x04DROP\x10\x01\x12\t\n" +
	"\x05ERROR\x10\x022\xd8\x01\n" +
	"\x10TransformService\x12A\n" +
	"\bMetadata\x12\x19.morph.v1.MetadataRequest\x1a\x1a.morph.v1.MetadataResponse\x12;\n" +
	"\x06Health\x12\x17.morph.v1.HealthRequest\x1a\x18.morph.v1.HealthResponse\x12D\n" +
	"\tTransform\x12\x1a.morph.v1.TransformRequest\x1a\x1b.morph.v1.TransformResponseB\x17Z\x15morph/api/proto/v1;pbb\x06proto3"

var (
	file_v1_morph_proto_rawDescOnce sync.Once
	file_v1_morph_proto_rawDescData []byte
)

func file_v1_morph_proto_rawDescGZIP() []byte {
	file_v1_morph_proto_rawDescOnce.Do(func() {
		file_v1_morph_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_v1_morph_proto_rawDesc), len(file_v1_morph_proto_rawDesc)))
	})
	return file_v1_morph_proto_rawDescData
}

var file_v1_morph_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_v1_morph_proto_msgTypes = make([]protoimpl.MessageInfo, 11)
var file_v1_morph_proto_goTypes = []any{
	(Status)(0),
	(*KafkaOffset)(nil),
	(*CheckpointToken)(nil),
	(*Frame)(nil),
	(*SourceAck)(nil),
	(*Event)(nil),
	(*TransformRequest)(nil),
	(*TransformResponse)(nil),
	(*MetadataRequest)(nil),
	(*MetadataResponse)(nil),
	(*HealthRequest)(nil),
	(*HealthResponse)(nil),
}
var file_v1_morph_proto_depIdxs = []int32{
	1,
	2,
	2,
	0,
	5,
	8,
	10,
	6,
	9,
	11,
	7,
	8,
	5,
	5,
	5,
	0,
}

func init() { file_v1_morph_proto_init() }
func file_v1_morph_proto_init() {
	if File_v1_morph_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_v1_morph_proto_rawDesc), len(file_v1_morph_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   11,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_v1_morph_proto_goTypes,
		DependencyIndexes: file_v1_morph_proto_depIdxs,
		EnumInfos:         file_v1_morph_proto_enumTypes,
		MessageInfos:      file_v1_morph_proto_msgTypes,
	}.Build()
	File_v1_morph_proto = out.File
	file_v1_morph_proto_goTypes = nil
	file_v1_morph_proto_depIdxs = nil
}
