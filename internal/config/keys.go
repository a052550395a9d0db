package config

// Recognized configuration keys for the cluster and for submitted
// topologies. Each key is a stable string identifier paired with a
// validator in the schema table below; the string form is part of the wire
// contract between submitting clients, the cluster master and the workers,
// and must never change meaning once released. Defaults for these keys
// live in defaults.yaml.
//
// A ConfigMap may also carry keys that are not listed here. The cluster
// ignores anything it does not recognize, but topologies are free to read
// their own private keys at runtime.

// Messaging transport.
const (
	// StormMessagingTransport is the transport plugin identifier used for
	// communication among tasks.
	StormMessagingTransport = "storm.messaging.transport"

	// StormMessagingNettyBufferSize is the send/recv buffer size in bytes.
	StormMessagingNettyBufferSize = "storm.messaging.netty.buffer_size"

	// StormMessagingNettyMaxRetries is how many times a peer retries a
	// connection to an unreachable remote.
	StormMessagingNettyMaxRetries = "storm.messaging.netty.max_retries"

	// StormMessagingNettyMinSleepMs is the minimum backoff between
	// connection retries, in milliseconds.
	StormMessagingNettyMinSleepMs = "storm.messaging.netty.min_wait_ms"

	// StormMessagingNettyMaxSleepMs is the maximum backoff between
	// connection retries, in milliseconds.
	StormMessagingNettyMaxSleepMs = "storm.messaging.netty.max_wait_ms"

	// StormMessagingNettyServerWorkerThreads is the server-side worker
	// thread count of the messaging layer.
	StormMessagingNettyServerWorkerThreads = "storm.messaging.netty.server_worker_threads"

	// StormMessagingNettyClientWorkerThreads is the client-side worker
	// thread count of the messaging layer.
	StormMessagingNettyClientWorkerThreads = "storm.messaging.netty.client_worker_threads"

	// StormNettyMessageBatchSize caps, in bytes, how much a busy client
	// batches before flushing.
	StormNettyMessageBatchSize = "storm.messaging.netty.transfer.batch.size"

	// StormNettyFlushCheckIntervalMs is how often pending messages are
	// checked against a writable channel.
	StormNettyFlushCheckIntervalMs = "storm.messaging.netty.flush.check.interval.ms"
)

// Cluster coordination (ZooKeeper) and cluster-wide settings.
const (
	// StormZookeeperServers lists the ZooKeeper hosts managing the cluster.
	StormZookeeperServers = "storm.zookeeper.servers"

	// StormZookeeperPort is the port used to reach each ZooKeeper server.
	StormZookeeperPort = "storm.zookeeper.port"

	// StormZookeeperRoot is the root path under which cluster state is kept.
	StormZookeeperRoot = "storm.zookeeper.root"

	// StormZookeeperSessionTimeout is the client session timeout.
	StormZookeeperSessionTimeout = "storm.zookeeper.session.timeout"

	// StormZookeeperConnectionTimeout is the client connection timeout.
	StormZookeeperConnectionTimeout = "storm.zookeeper.connection.timeout"

	// StormZookeeperRetryTimes is how many times a coordination operation
	// is retried.
	StormZookeeperRetryTimes = "storm.zookeeper.retry.times"

	// StormZookeeperRetryInterval is the pause between coordination
	// operation retries.
	StormZookeeperRetryInterval = "storm.zookeeper.retry.interval"

	// StormZookeeperRetryIntervalCeiling caps the retry pause, in
	// milliseconds.
	StormZookeeperRetryIntervalCeiling = "storm.zookeeper.retry.intervalceiling.millis"

	// StormZookeeperAuthScheme is the coordination auth scheme, e.g.
	// "digest". Empty means no authentication.
	StormZookeeperAuthScheme = "storm.zookeeper.auth.scheme"

	// StormZookeeperAuthPayload is the auth payload, UTF-8 encoded during
	// authentication.
	StormZookeeperAuthPayload = "storm.zookeeper.auth.payload"

	// StormLocalDir is a local filesystem directory the daemons may use as
	// scratch space. Must exist and be writable.
	StormLocalDir = "storm.local.dir"

	// StormScheduler is the plugin identifier of the global task scheduler.
	// Unset means the default system scheduler.
	StormScheduler = "storm.scheduler"

	// StormClusterMode is either "distributed" or "local".
	StormClusterMode = "storm.cluster.mode"

	// StormLocalHostname is the hostname daemons report to the master. Set
	// it when DNS cannot resolve worker hosts for each other.
	StormLocalHostname = "storm.local.hostname"

	// StormThriftTransportPlugin is the transport plugin identifier for
	// client/server RPC.
	StormThriftTransportPlugin = "storm.thrift.transport"

	// StormLocalModeZmq selects the native messaging layer in local mode;
	// false keeps the pure in-process messaging system.
	StormLocalModeZmq = "storm.local.mode.zmq"

	// StormID is the identifier of a running topology: the topology name
	// with a unique nonce appended. Assigned at submission.
	StormID = "storm.id"
)

// Master (nimbus) daemon.
const (
	// NimbusHost is the host the cluster master runs on.
	NimbusHost = "nimbus.host"

	// NimbusThriftPort is the master RPC port clients submit to.
	NimbusThriftPort = "nimbus.thrift.port"

	// NimbusThriftMaxBufferSize caps the RPC read buffer, in bytes.
	NimbusThriftMaxBufferSize = "nimbus.thrift.max_buffer_size"

	// NimbusChildopts holds process options applied to the master daemon.
	NimbusChildopts = "nimbus.childopts"

	// NimbusTaskTimeoutSecs is how long a task may go without heartbeating
	// before the master reassigns it.
	NimbusTaskTimeoutSecs = "nimbus.task.timeout.secs"

	// NimbusMonitorFreqSecs is how often the master checks heartbeats and
	// performs reassignment.
	NimbusMonitorFreqSecs = "nimbus.monitor.freq.secs"

	// NimbusCleanupInboxFreqSecs is how often the master inbox cleanup runs.
	NimbusCleanupInboxFreqSecs = "nimbus.cleanup.inbox.freq.secs"

	// NimbusInboxJarExpirationSecs is how long an uploaded artifact lives
	// in the inbox before cleanup removes it.
	NimbusInboxJarExpirationSecs = "nimbus.inbox.jar.expiration.secs"

	// NimbusSupervisorTimeoutSecs is how long a supervisor may go without
	// heartbeating before it stops receiving new work.
	NimbusSupervisorTimeoutSecs = "nimbus.supervisor.timeout.secs"

	// NimbusTaskLaunchSecs is the timeout used for a task's first
	// heartbeat, overriding NimbusTaskTimeoutSecs during launch.
	NimbusTaskLaunchSecs = "nimbus.task.launch.secs"

	// NimbusReassign controls whether the master reassigns tasks it
	// detects as dead. Defaults to true.
	NimbusReassign = "nimbus.reassign"

	// NimbusFileCopyExpirationSecs is how long an idle upload/download
	// connection survives before the master drops it.
	NimbusFileCopyExpirationSecs = "nimbus.file.copy.expiration.secs"

	// NimbusTopologyValidator is the plugin identifier run against every
	// submitted topology.
	NimbusTopologyValidator = "nimbus.topology.validator"

	// NimbusAuthorizer is the authorization plugin identifier for the
	// master.
	NimbusAuthorizer = "nimbus.authorizer"
)

// UI, log viewer and DRPC daemons.
const (
	// UIPort is the port the cluster UI binds to.
	UIPort = "ui.port"

	// UIChildopts holds process options for the UI daemon.
	UIChildopts = "ui.childopts"

	// LogviewerPort is the HTTP port of the log viewer.
	LogviewerPort = "logviewer.port"

	// LogviewerChildopts holds process options for the log viewer daemon.
	LogviewerChildopts = "logviewer.childopts"

	// LogviewerAppenderName is the appender the log viewer uses to locate
	// the log directory.
	LogviewerAppenderName = "logviewer.appender.name"

	// DRPCServers lists the DRPC servers for request spouts to talk to.
	DRPCServers = "drpc.servers"

	// DRPCPort receives DRPC requests from clients.
	DRPCPort = "drpc.port"

	// DRPCWorkerThreads is the DRPC server worker thread count.
	DRPCWorkerThreads = "drpc.worker.threads"

	// DRPCQueueSize is the DRPC server request queue size.
	DRPCQueueSize = "drpc.queue.size"

	// DRPCInvocationsPort is used by DRPC topologies to receive function
	// invocations and return results.
	DRPCInvocationsPort = "drpc.invocations.port"

	// DRPCRequestTimeoutSecs bounds a DRPC request inside the server.
	DRPCRequestTimeoutSecs = "drpc.request.timeout.secs"

	// DRPCChildopts holds process options for the DRPC daemon.
	DRPCChildopts = "drpc.childopts"
)

// Supervisor, worker and task daemons.
const (
	// SupervisorSchedulerMeta is arbitrary metadata attached to a
	// supervisor for scheduler plugins to read.
	SupervisorSchedulerMeta = "supervisor.scheduler.meta"

	// SupervisorSlotsPorts lists the ports workers may bind on one
	// supervisor; one worker per port.
	SupervisorSlotsPorts = "supervisor.slots.ports"

	// SupervisorChildopts holds process options for the supervisor daemon.
	SupervisorChildopts = "supervisor.childopts"

	// SupervisorWorkerTimeoutSecs is how long a worker may go without
	// heartbeating before the supervisor restarts it.
	SupervisorWorkerTimeoutSecs = "supervisor.worker.timeout.secs"

	// SupervisorWorkerStartMaxRetry caps worker restart attempts.
	SupervisorWorkerStartMaxRetry = "supervisor.worker.start.retry.max"

	// SupervisorWorkerStartTimeoutSecs overrides the worker heartbeat
	// timeout during launch, when startup overhead applies.
	SupervisorWorkerStartTimeoutSecs = "supervisor.worker.start.timeout.secs"

	// SupervisorEnable controls whether the supervisor launches assigned
	// workers. Only unit tests should turn this off.
	SupervisorEnable = "supervisor.enable"

	// SupervisorHeartbeatFrequencySecs is how often the supervisor
	// heartbeats to the master.
	SupervisorHeartbeatFrequencySecs = "supervisor.heartbeat.frequency.secs"

	// SupervisorMonitorFrequencySecs is how often the supervisor checks
	// worker heartbeats.
	SupervisorMonitorFrequencySecs = "supervisor.monitor.frequency.secs"

	// WorkerChildopts holds process options for workers launched by a
	// supervisor. "%ID%" substrings are replaced with the worker id.
	WorkerChildopts = "worker.childopts"

	// WorkerReceiverThreadCount is the receiver thread count per worker.
	WorkerReceiverThreadCount = "topology.worker.receiver.thread.count"

	// WorkerHeartbeatFrequencySecs is how often a worker heartbeats to its
	// supervisor.
	WorkerHeartbeatFrequencySecs = "worker.heartbeat.frequency.secs"

	// TaskHeartbeatFrequencySecs is how often a task reports status to the
	// master.
	TaskHeartbeatFrequencySecs = "task.heartbeat.frequency.secs"

	// TaskRefreshPollSecs is how often a task re-syncs its connections to
	// other tasks, as a fallback to reassignment notifications.
	TaskRefreshPollSecs = "task.refresh.poll.secs"
)

// Topology-level settings, set per submitted job.
const (
	// TopologyName is the submitted topology's name, stamped at submission.
	TopologyName = "topology.name"

	// TopologyDebug makes workers log every emitted message.
	TopologyDebug = "topology.debug"

	// TopologyWorkers is how many worker processes the cluster spawns for
	// the topology.
	TopologyWorkers = "topology.workers"

	// TopologyTasks is how many task instances to create per component.
	TopologyTasks = "topology.tasks"

	// TopologyAckerExecutors is how many acker executors to spawn. Zero
	// acks tuples immediately, disabling reliability.
	TopologyAckerExecutors = "topology.acker.executors"

	// TopologyMessageTimeoutSecs bounds full processing of a message
	// emitted by a spout before it is failed.
	TopologyMessageTimeoutSecs = "topology.message.timeout.secs"

	// TopologyEnableMessageTimeouts disables tuple timeouts when false;
	// intended for unit tests.
	TopologyEnableMessageTimeouts = "topology.enable.message.timeouts"

	// TopologyKryoRegister accumulates serialization registrations: each
	// entry is a class identifier or a {class: serializer} pair.
	TopologyKryoRegister = "topology.kryo.register"

	// TopologyKryoDecorators accumulates identifiers of decorators applied
	// to the serialization engine at startup.
	TopologyKryoDecorators = "topology.kryo.decorators"

	// TopologyKryoFactory identifies the factory that builds the
	// serialization engine instance; registrations and decorators are
	// applied on top of it.
	TopologyKryoFactory = "topology.kryo.factory"

	// TopologySkipMissingKryoRegistrations makes workers ignore
	// registrations whose serializer they cannot resolve instead of
	// failing at startup.
	TopologySkipMissingKryoRegistrations = "topology.skip.missing.kryo.registrations"

	// TopologyMetricsConsumerRegister accumulates metrics-consumer
	// registrations; each entry is a {class, parallelism.hint, argument}
	// record routed all metrics data.
	TopologyMetricsConsumerRegister = "topology.metrics.consumer.register"

	// TopologyTupleSerializer identifies the serializer for tuple payloads.
	TopologyTupleSerializer = "topology.tuple.serializer"

	// TopologyMultilangSerializer identifies the serializer used between
	// shell components and non-native processes.
	TopologyMultilangSerializer = "topology.multilang.serializer"

	// TopologyFallBackOnJavaSerialization permits the fallback generic
	// serializer for unregistered types.
	TopologyFallBackOnJavaSerialization = "topology.fall.back.on.java.serialization"

	// TopologyMaxTaskParallelism caps component parallelism; mostly used
	// to bound thread counts in local mode tests.
	TopologyMaxTaskParallelism = "topology.max.task.parallelism"

	// TopologyMaxSpoutPending caps un-acked tuples pending per spout task.
	TopologyMaxSpoutPending = "topology.max.spout.pending"

	// TopologySpoutWaitStrategy identifies the strategy a spout applies
	// when it has nothing to emit or is at max pending.
	TopologySpoutWaitStrategy = "topology.spout.wait.strategy"

	// TopologySleepSpoutWaitStrategyTimeMs is the sleep used by the
	// sleeping wait strategy.
	TopologySleepSpoutWaitStrategyTimeMs = "topology.sleep.spout.wait.strategy.time.ms"

	// TopologyStateSynchronizationTimeoutSecs bounds how long a component
	// waits for a source of state before re-requesting synchronization.
	TopologyStateSynchronizationTimeoutSecs = "topology.state.synchronization.timeout.secs"

	// TopologyStatsSampleRate is the fraction of tuples sampled for task
	// statistics.
	TopologyStatsSampleRate = "topology.stats.sample.rate"

	// TopologyBuiltinMetricsBucketSizeSecs is the bucketing period of
	// built-in metrics.
	TopologyBuiltinMetricsBucketSizeSecs = "topology.builtin.metrics.bucket.size.secs"

	// TopologyWorkerChildopts holds topology-specific worker process
	// options, applied in addition to WorkerChildopts.
	TopologyWorkerChildopts = "topology.worker.childopts"

	// TopologyTransactionalID stores the transactional topology id used to
	// keep its state in the coordination service.
	TopologyTransactionalID = "topology.transactional.id"

	// TopologyAutoTaskHooks lists hook identifiers attached to every
	// component, e.g. for monitoring integration.
	TopologyAutoTaskHooks = "topology.auto.task.hooks"

	// TopologyExecutorReceiveBufferSize is the executor receive queue
	// size. Must be a power of two.
	TopologyExecutorReceiveBufferSize = "topology.executor.receive.buffer.size"

	// TopologyReceiverBufferSize caps messages batched from the network
	// receiver onto executor queues. Must be a power of two.
	TopologyReceiverBufferSize = "topology.receiver.buffer.size"

	// TopologyExecutorSendBufferSize is the executor send queue size. Must
	// be a power of two.
	TopologyExecutorSendBufferSize = "topology.executor.send.buffer.size"

	// TopologyTransferBufferSize is the worker transfer queue size.
	TopologyTransferBufferSize = "topology.transfer.buffer.size"

	// TopologyTickTupleFreqSecs is how often system tick tuples are sent
	// to tasks; meant as a component-level override.
	TopologyTickTupleFreqSecs = "topology.tick.tuple.freq.secs"

	// TopologyDisruptorWaitStrategy configures the internal queue wait
	// strategy, trading latency against throughput.
	TopologyDisruptorWaitStrategy = "topology.disruptor.wait.strategy"

	// TopologyWorkerSharedThreadPoolSize sizes the shared pool worker
	// tasks may borrow from.
	TopologyWorkerSharedThreadPoolSize = "topology.worker.shared.thread.pool.size"

	// TopologyErrorThrottleIntervalSecs is the window over which reported
	// errors are throttled.
	TopologyErrorThrottleIntervalSecs = "topology.error.throttle.interval.secs"

	// TopologyMaxErrorReportPerInterval caps errors reported per throttle
	// window.
	TopologyMaxErrorReportPerInterval = "topology.max.error.report.per.interval"

	// TopologyTridentBatchEmitIntervalMillis is the minimum interval
	// between emitted batches in a transactional topology.
	TopologyTridentBatchEmitIntervalMillis = "topology.trident.batch.emit.interval.millis"

	// TopologyShellboltMaxPending caps pending tuples in one shell
	// component.
	TopologyShellboltMaxPending = "topology.shellbolt.max.pending"
)

// Transactional state storage.
const (
	// TransactionalZookeeperRoot is the root path for transactional state.
	TransactionalZookeeperRoot = "transactional.zookeeper.root"

	// TransactionalZookeeperServers lists coordination hosts for
	// transactional state; unset falls back to StormZookeeperServers.
	TransactionalZookeeperServers = "transactional.zookeeper.servers"

	// TransactionalZookeeperPort is the port for transactional state
	// servers; unset falls back to StormZookeeperPort.
	TransactionalZookeeperPort = "transactional.zookeeper.port"
)

// Legacy messaging and process environment.
const (
	// ZmqThreads is the context thread count per worker process.
	ZmqThreads = "zmq.threads"

	// ZmqLingerMillis is how long a closed connection keeps retrying
	// pending sends.
	ZmqLingerMillis = "zmq.linger.millis"

	// ZmqHwm is the high-water mark of push sockets, bounding network
	// layer buffering.
	ZmqHwm = "zmq.hwm"

	// JavaLibraryPath is passed to spawned daemon processes so they can
	// locate native libraries.
	JavaLibraryPath = "java.library.path"

	// DevZookeeperPath is the data path of the development-only local
	// coordination server.
	DevZookeeperPath = "dev.zookeeper.path"

	// IsolationSchedulerMachines maps topology names to machine counts
	// dedicated to them when the isolation scheduler is active.
	IsolationSchedulerMachines = "isolation.scheduler.machines"
)

// Adaptive, location-aware scheduler extension: network-coordinate
// estimation (Vivaldi), a continuous per-supervisor scheduler, worker
// monitoring and a gradient-step planner.
const (
	// AdaptiveSchedulerEnabled activates the location-aware adaptive
	// scheduler extension.
	AdaptiveSchedulerEnabled = "adaptivescheduler.enabled"

	// AdaptiveSchedulerType selects which adaptive scheduler variant runs.
	AdaptiveSchedulerType = "adaptivescheduler.type"

	// AdaptiveSchedulerJustMonitor disables reassignment while keeping the
	// monitoring pipeline running.
	AdaptiveSchedulerJustMonitor = "adaptivescheduler.just_monitor"

	// AdaptiveSchedulerNetworkSpaceRoundDuration is how often the network
	// coordinate space is updated.
	AdaptiveSchedulerNetworkSpaceRoundDuration = "adaptivescheduler.network_space.round.duration"

	// AdaptiveSchedulerNetworkSpaceAlpha is the coordinate-update damping
	// parameter applied to each latency sample.
	AdaptiveSchedulerNetworkSpaceAlpha = "adaptivescheduler.network_space.alpha"

	// AdaptiveSchedulerNetworkSpaceBeta is the moving-average parameter for
	// the coordinate prediction error, between 0 and 1.
	AdaptiveSchedulerNetworkSpaceBeta = "adaptivescheduler.network_space.beta"

	// AdaptiveSchedulerNetworkSpaceServerPort is the per-node port used to
	// exchange coordinates and measure latency.
	AdaptiveSchedulerNetworkSpaceServerPort = "adaptivescheduler.network_space.server.port"

	// AdaptiveSchedulerNetworkSpaceConfidenceThreshold is the confidence a
	// coordinate must reach before being published.
	AdaptiveSchedulerNetworkSpaceConfidenceThreshold = "adaptivescheduler.network_space.confidence_threshold"

	// AdaptiveSchedulerNetworkSpaceRoundBetweenPublications is the number
	// of rounds between consecutive coordinate publications.
	AdaptiveSchedulerNetworkSpaceRoundBetweenPublications = "adaptivescheduler.network_space.round_between_publications"

	// AdaptiveSchedulerContinuousSchedulerFreqSec is how often the local
	// continuous scheduler runs inside each supervisor.
	AdaptiveSchedulerContinuousSchedulerFreqSec = "adaptivescheduler.continuous_scheduler.freq.sec"

	// AdaptiveSchedulerContinuousSchedulerForceThreshold stops the spring
	// force iteration once the magnitude falls below it.
	AdaptiveSchedulerContinuousSchedulerForceThreshold = "adaptivescheduler.continuous_scheduler.force.threshold"

	// AdaptiveSchedulerContinuousSchedulerForceDelta dampens operator
	// movement through the latency space to avoid oscillation.
	AdaptiveSchedulerContinuousSchedulerForceDelta = "adaptivescheduler.continuous_scheduler.force.delta"

	// AdaptiveSchedulerContinuousSchedulerMaxExecutorPerSlot caps
	// executors placed in one slot by the planning phase.
	AdaptiveSchedulerContinuousSchedulerMaxExecutorPerSlot = "adaptivescheduler.continuous_scheduler.max_exec_per_slot"

	// AdaptiveSchedulerContinuousSchedulerKNearestNode is the K used by
	// the nearest-node retriever in the planning phase.
	AdaptiveSchedulerContinuousSchedulerKNearestNode = "adaptivescheduler.continuous_scheduler.nearest_node.k"

	// AdaptiveSchedulerContinuousSchedulerMigrationThreshold is the
	// relative-distance improvement, between 0 and 1, required before a
	// migration is performed. Zero migrates always.
	AdaptiveSchedulerContinuousSchedulerMigrationThreshold = "adaptivescheduler.continuous_scheduler.migration_threshold"

	// AdaptiveSchedulerInitialSchedulerLocationAware makes the initial
	// placement location-aware; false falls back to round-robin.
	AdaptiveSchedulerInitialSchedulerLocationAware = "adaptivescheduler.initial_scheduler.location_aware"

	// AdaptiveSchedulerUseExtendedSpace adds a node-usage dimension to the
	// two latency dimensions of the placement space.
	AdaptiveSchedulerUseExtendedSpace = "adaptivescheduler.space.use_extended_space"

	// AdaptiveSchedulerWorkerMonitorEnabled activates the worker monitor.
	AdaptiveSchedulerWorkerMonitorEnabled = "adaptivescheduler.worker_monitor.enabled"

	// AdaptiveSchedulerWorkerMonitorComputeStatsFreqSec is how often
	// per-worker statistics are computed.
	AdaptiveSchedulerWorkerMonitorComputeStatsFreqSec = "adaptivescheduler.worker_monitor.stats.freq.sec"

	// AdaptiveSchedulerInternalDatabasePort is the port of the measurement
	// database.
	AdaptiveSchedulerInternalDatabasePort = "adaptivescheduler.internal.database.port"

	// AdaptiveSchedulerSpaceMaxLatency bounds the latency dimensions of
	// the placement space.
	AdaptiveSchedulerSpaceMaxLatency = "adaptivescheduler.space.latency.max"

	// AdaptiveSchedulerSpaceW1 weighs the first placement-space dimension.
	AdaptiveSchedulerSpaceW1 = "adaptivescheduler.space.weight.1"

	// AdaptiveSchedulerSpaceW2 weighs the second placement-space dimension.
	AdaptiveSchedulerSpaceW2 = "adaptivescheduler.space.weight.2"

	// AdaptiveSchedulerSpaceW3 weighs the third placement-space dimension.
	AdaptiveSchedulerSpaceW3 = "adaptivescheduler.space.weight.3"

	// AdaptiveSchedulerSpaceReliability weighs node reliability in the
	// placement cost.
	AdaptiveSchedulerSpaceReliability = "adaptivescheduler.space.reliability"

	// AdaptiveSchedulerSpaceUseUtilization interprets the third dimension
	// as node utilization.
	AdaptiveSchedulerSpaceUseUtilization = "adaptivescheduler.space.third.as.utilization"

	// AdaptiveSchedulerSpaceReliabilityPath locates the reliability file.
	AdaptiveSchedulerSpaceReliabilityPath = "adaptivescheduler.space.reliability.path"

	// AdaptiveSchedulerGradientStepRetryMaxCounter caps retries when the
	// analyze phase halves the gradient modulus.
	AdaptiveSchedulerGradientStepRetryMaxCounter = "adaptivescheduler.gradientstep.retry_max_counter"

	// AdaptiveSchedulerGradientStepTopologyCooldown is the number of
	// rounds a topology waits after a successful migration.
	AdaptiveSchedulerGradientStepTopologyCooldown = "adaptivescheduler.gradientstep.topology_cooldown"

	// AdaptiveSchedulerGradientStepDebug enables gradient-step debug
	// logging.
	AdaptiveSchedulerGradientStepDebug = "adaptivescheduler.gradientstep.debug"

	// AdaptiveSchedulerGradientStepImprovementThreshold is the minimum
	// per-iteration improvement required for the gradient method to keep
	// iterating.
	AdaptiveSchedulerGradientStepImprovementThreshold = "adaptivescheduler.gradientstep.improvement_treshold"

	// AdaptiveSchedulerGradientStepMigrationThreshold is the minimum cost
	// improvement required before a planned migration executes.
	AdaptiveSchedulerGradientStepMigrationThreshold = "adaptivescheduler.gradientstep.migration_treshold"

	// AdaptiveSchedulerGradientStepMigrationImprovementFraction scales how
	// close to the ideal placement a migration target must land, between 0
	// and 1.
	AdaptiveSchedulerGradientStepMigrationImprovementFraction = "adaptivescheduler.gradientstep.migration_improvement_fraction"
)

// schema binds every recognized key to its validator. The table is built
// once and never mutated; Lookup and Validate are the only readers.
var schema = map[string]Validator{
	StormMessagingTransport:                IsString,
	StormMessagingNettyBufferSize:          IsNumber,
	StormMessagingNettyMaxRetries:          IsNumber,
	StormMessagingNettyMinSleepMs:          IsNumber,
	StormMessagingNettyMaxSleepMs:          IsNumber,
	StormMessagingNettyServerWorkerThreads: IsNumber,
	StormMessagingNettyClientWorkerThreads: IsNumber,
	StormNettyMessageBatchSize:             IsNumber,
	StormNettyFlushCheckIntervalMs:         IsNumber,

	StormZookeeperServers:              ListOf(IsString),
	StormZookeeperPort:                 IsNumber,
	StormZookeeperRoot:                 IsString,
	StormZookeeperSessionTimeout:       IsNumber,
	StormZookeeperConnectionTimeout:    IsNumber,
	StormZookeeperRetryTimes:           IsNumber,
	StormZookeeperRetryInterval:        IsNumber,
	StormZookeeperRetryIntervalCeiling: IsNumber,
	StormZookeeperAuthScheme:           IsString,
	StormZookeeperAuthPayload:          IsString,
	StormLocalDir:                      IsString,
	StormScheduler:                     IsString,
	StormClusterMode:                   IsString,
	StormLocalHostname:                 IsString,
	StormThriftTransportPlugin:         IsString,
	StormLocalModeZmq:                  IsBoolean,
	StormID:                            IsString,

	NimbusHost:                   IsString,
	NimbusThriftPort:             IsNumber,
	NimbusThriftMaxBufferSize:    IsNumber,
	NimbusChildopts:              IsString,
	NimbusTaskTimeoutSecs:        IsNumber,
	NimbusMonitorFreqSecs:        IsNumber,
	NimbusCleanupInboxFreqSecs:   IsNumber,
	NimbusInboxJarExpirationSecs: IsNumber,
	NimbusSupervisorTimeoutSecs:  IsNumber,
	NimbusTaskLaunchSecs:         IsNumber,
	NimbusReassign:               IsBoolean,
	NimbusFileCopyExpirationSecs: IsNumber,
	NimbusTopologyValidator:      IsString,
	NimbusAuthorizer:             IsString,

	UIPort:                 IsNumber,
	UIChildopts:            IsString,
	LogviewerPort:          IsNumber,
	LogviewerChildopts:     IsString,
	LogviewerAppenderName:  IsString,
	DRPCServers:            ListOf(IsString),
	DRPCPort:               IsNumber,
	DRPCWorkerThreads:      IsNumber,
	DRPCQueueSize:          IsNumber,
	DRPCInvocationsPort:    IsNumber,
	DRPCRequestTimeoutSecs: IsNumber,
	DRPCChildopts:          IsString,

	SupervisorSchedulerMeta:          IsMap,
	SupervisorSlotsPorts:             ListOf(IsNumber),
	SupervisorChildopts:              IsString,
	SupervisorWorkerTimeoutSecs:      IsNumber,
	SupervisorWorkerStartMaxRetry:    IsNumber,
	SupervisorWorkerStartTimeoutSecs: IsNumber,
	SupervisorEnable:                 IsBoolean,
	SupervisorHeartbeatFrequencySecs: IsNumber,
	SupervisorMonitorFrequencySecs:   IsNumber,
	WorkerChildopts:                  StringOrStringList,
	WorkerReceiverThreadCount:        IsNumber,
	WorkerHeartbeatFrequencySecs:     IsNumber,
	TaskHeartbeatFrequencySecs:       IsNumber,
	TaskRefreshPollSecs:              IsNumber,

	TopologyName:                            IsString,
	TopologyDebug:                           IsBoolean,
	TopologyWorkers:                         IsNumber,
	TopologyTasks:                           IsNumber,
	TopologyAckerExecutors:                  IsNumber,
	TopologyMessageTimeoutSecs:              IsNumber,
	TopologyEnableMessageTimeouts:           IsBoolean,
	TopologyKryoRegister:                    ListOf(SerializationEntry),
	TopologyKryoDecorators:                  ListOf(IsString),
	TopologyKryoFactory:                     IsString,
	TopologySkipMissingKryoRegistrations:    IsBoolean,
	TopologyMetricsConsumerRegister:         ListOf(MetricsConsumerEntry),
	TopologyTupleSerializer:                 IsString,
	TopologyMultilangSerializer:             IsString,
	TopologyFallBackOnJavaSerialization:     IsBoolean,
	TopologyMaxTaskParallelism:              IsNumber,
	TopologyMaxSpoutPending:                 IsNumber,
	TopologySpoutWaitStrategy:               IsString,
	TopologySleepSpoutWaitStrategyTimeMs:    IsNumber,
	TopologyStateSynchronizationTimeoutSecs: IsNumber,
	TopologyStatsSampleRate:                 IsNumber,
	TopologyBuiltinMetricsBucketSizeSecs:    IsNumber,
	TopologyWorkerChildopts:                 StringOrStringList,
	TopologyTransactionalID:                 IsString,
	TopologyAutoTaskHooks:                   ListOf(IsString),
	TopologyExecutorReceiveBufferSize:       PowerOfTwo,
	TopologyReceiverBufferSize:              PowerOfTwo,
	TopologyExecutorSendBufferSize:          PowerOfTwo,
	TopologyTransferBufferSize:              IsNumber,
	TopologyTickTupleFreqSecs:               IsNumber,
	TopologyDisruptorWaitStrategy:           IsString,
	TopologyWorkerSharedThreadPoolSize:      IsNumber,
	TopologyErrorThrottleIntervalSecs:       IsNumber,
	TopologyMaxErrorReportPerInterval:       IsNumber,
	TopologyTridentBatchEmitIntervalMillis:  IsNumber,
	TopologyShellboltMaxPending:             IsNumber,

	TransactionalZookeeperRoot:    IsString,
	TransactionalZookeeperServers: ListOf(IsString),
	TransactionalZookeeperPort:    IsNumber,

	ZmqThreads:                 IsNumber,
	ZmqLingerMillis:            IsNumber,
	ZmqHwm:                     IsNumber,
	JavaLibraryPath:            IsString,
	DevZookeeperPath:           IsString,
	IsolationSchedulerMachines: IsMap,

	AdaptiveSchedulerEnabled:                              IsBoolean,
	AdaptiveSchedulerType:                                 IsString,
	AdaptiveSchedulerJustMonitor:                          IsBoolean,
	AdaptiveSchedulerNetworkSpaceRoundDuration:            IsNumber,
	AdaptiveSchedulerNetworkSpaceAlpha:                    IsNumber,
	AdaptiveSchedulerNetworkSpaceBeta:                     IsNumber,
	AdaptiveSchedulerNetworkSpaceServerPort:               IsNumber,
	AdaptiveSchedulerNetworkSpaceConfidenceThreshold:      IsNumber,
	AdaptiveSchedulerNetworkSpaceRoundBetweenPublications: IsNumber,
	AdaptiveSchedulerContinuousSchedulerFreqSec:           IsNumber,
	AdaptiveSchedulerContinuousSchedulerForceThreshold:    IsNumber,
	AdaptiveSchedulerContinuousSchedulerForceDelta:        IsNumber,
	AdaptiveSchedulerContinuousSchedulerMaxExecutorPerSlot: IsNumber,
	AdaptiveSchedulerContinuousSchedulerKNearestNode:       IsNumber,
	AdaptiveSchedulerContinuousSchedulerMigrationThreshold: IsNumber,
	AdaptiveSchedulerInitialSchedulerLocationAware:         IsBoolean,
	AdaptiveSchedulerUseExtendedSpace:                      IsBoolean,
	AdaptiveSchedulerWorkerMonitorEnabled:                  IsBoolean,
	AdaptiveSchedulerWorkerMonitorComputeStatsFreqSec:      IsNumber,
	AdaptiveSchedulerInternalDatabasePort:                  IsNumber,
	AdaptiveSchedulerSpaceMaxLatency:                       IsNumber,
	AdaptiveSchedulerSpaceW1:                               IsNumber,
	AdaptiveSchedulerSpaceW2:                               IsNumber,
	AdaptiveSchedulerSpaceW3:                               IsNumber,
	AdaptiveSchedulerSpaceReliability:                      IsNumber,
	AdaptiveSchedulerSpaceUseUtilization:                   IsBoolean,
	AdaptiveSchedulerSpaceReliabilityPath:                  IsString,
	AdaptiveSchedulerGradientStepRetryMaxCounter:           IsInteger,
	AdaptiveSchedulerGradientStepTopologyCooldown:          IsInteger,
	AdaptiveSchedulerGradientStepDebug:                     IsBoolean,
	AdaptiveSchedulerGradientStepImprovementThreshold:      IsNumber,
	AdaptiveSchedulerGradientStepMigrationThreshold:        IsNumber,
	AdaptiveSchedulerGradientStepMigrationImprovementFraction: IsNumber,
}

// accumulatorTargets are the keys whose value is always a list built by
// repeated appends; Merge concatenates them instead of replacing.
var accumulatorTargets = map[string]bool{
	TopologyKryoRegister:            true,
	TopologyKryoDecorators:          true,
	TopologyMetricsConsumerRegister: true,
}

// Lookup returns the validator registered for key, if any. Unrecognized
// keys are legal and unvalidated.
func Lookup(key string) (Validator, bool) {
	v, ok := schema[key]
	return v, ok
}

// Validate checks value against key's registered validator. Unknown keys
// always pass so that forward-compatible and application-private keys are
// never rejected.
func Validate(key string, value interface{}) error {
	v, ok := schema[key]
	if !ok {
		return nil
	}
	if !v.Accept(value) {
		return &SchemaViolation{Key: key, Expected: v.Expected, Value: value}
	}
	return nil
}

// IsAccumulatorTarget reports whether key holds an append-built list.
func IsAccumulatorTarget(key string) bool {
	return accumulatorTargets[key]
}
